package users

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
)

// Service — регистрация, вход и профиль пользователя.
type Service struct {
	log    *log.Logger
	users  domain.UsersRepo
	hasher domain.PasswordHasher
	tokens domain.TokenManager
}

func New(logger *log.Logger, users domain.UsersRepo, hasher domain.PasswordHasher, tokens domain.TokenManager) *Service {
	return &Service{log: logger, users: users, hasher: hasher, tokens: tokens}
}

// Register создаёт пользователя. Пароль хранится только argon2id-хэшем.
func (s *Service) Register(ctx context.Context, username, password, avatarURL string) (domain.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.User{}, domain.Validationf("username and password are required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: hash password: %v", domain.ErrUnexpected, err)
	}

	u, err := s.users.CreateUser(ctx, username, hash, avatarURL)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("%w: create user: %v", domain.ErrPersistence, err)
	}

	s.log.Printf("registered user id=%s username=%s", u.ID, u.Username)
	return u, nil
}

// Login проверяет пару логин/пароль и выдаёт JWT на 24 часа.
// Наружу — единый ErrInvalidCredentials: «нет такого пользователя» и
// «неверный пароль» неразличимы для вызывающего.
func (s *Service) Login(ctx context.Context, username, password string) (domain.Token, error) {
	u, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		s.log.Printf("login: user lookup failed username=%s: %v", username, err)
		return "", domain.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(password, u.PassHash)
	if err != nil || !ok {
		s.log.Printf("login: password verify failed username=%s", username)
		return "", domain.ErrInvalidCredentials
	}

	tok, _, err := s.tokens.Issue(ctx, u.ID, u.Username)
	if err != nil {
		return "", fmt.Errorf("%w: issue token: %v", domain.ErrUnexpected, err)
	}

	s.log.Printf("login ok id=%s username=%s", u.ID, u.Username)
	return tok, nil
}

// Info возвращает профиль по id (без пароля).
func (s *Service) Info(ctx context.Context, id domain.UserID) (domain.User, error) {
	u, err := s.users.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("%w: user lookup: %v", domain.ErrPersistence, err)
	}
	return u, nil
}
