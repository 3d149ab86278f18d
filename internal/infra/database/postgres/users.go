package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
)

func (r *PGRepo) CreateUser(ctx context.Context, username, passHash, avatarURL string) (domain.User, error) {
	q := r.qb().Insert(fmt.Sprintf("%s.users", r.schema)).
		Columns("username", "pass_hash", "avatar_url").
		Values(username, passHash, avatarURL).
		Suffix("RETURNING id, username, pass_hash, avatar_url, created_at")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateUser", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PassHash, &u.AvatarURL, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation по username
			r.logger.Printf("CreateUser duplicate after %s: username=%s", time.Since(start), username)
			return domain.User{}, fmt.Errorf("%w: %s", domain.ErrDuplicateUser, username)
		}
		r.logger.Printf("CreateUser scan error after %s: %v", time.Since(start), err)
		return domain.User{}, err
	}
	r.logger.Printf("CreateUser ok in %s id=%s username=%s", time.Since(start), u.ID, u.Username)
	return u, nil
}

func (r *PGRepo) UserByUsername(ctx context.Context, username string) (domain.User, error) {
	q := r.qb().Select("id", "username", "pass_hash", "avatar_url", "created_at").
		From(fmt.Sprintf("%s.users", r.schema)).
		Where(sq.Eq{"username": username})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UserByUsername", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PassHash, &u.AvatarURL, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("UserByUsername not found in %s username=%s", time.Since(start), username)
			return domain.User{}, fmt.Errorf("%w: user %s", domain.ErrNotFound, username)
		}
		r.logger.Printf("UserByUsername scan error after %s: %v", time.Since(start), err)
		return domain.User{}, err
	}
	r.logger.Printf("UserByUsername ok in %s id=%s", time.Since(start), u.ID)
	return u, nil
}

func (r *PGRepo) UserByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	q := r.qb().Select("id", "username", "pass_hash", "avatar_url", "created_at").
		From(fmt.Sprintf("%s.users", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UserByID", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PassHash, &u.AvatarURL, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
		}
		r.logger.Printf("UserByID scan error after %s: %v", time.Since(start), err)
		return domain.User{}, err
	}
	r.logger.Printf("UserByID ok in %s id=%s", time.Since(start), u.ID)
	return u, nil
}
