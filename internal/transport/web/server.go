package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/config"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1/file"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1/health"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1/user"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, svc Services, tokens domain.TokenManager, db, cache health.Pinger) *Server {
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())
	fileLog := log.New(logger.Writer(), logger.Prefix()+"[file] ", logger.Flags())
	userLog := log.New(logger.Writer(), logger.Prefix()+"[user] ", logger.Flags())

	healthHandler := &health.Handler{Log: healthLog, DB: db, Cache: cache}
	fileHandler := &file.Handler{Log: fileLog, Files: svc.Files}
	userHandler := &user.Handler{Log: userLog, Users: svc.Users}

	srv := &http.Server{
		Addr:    cfg.AppPort,
		Handler: newRouter(healthHandler, fileHandler, userHandler, tokens, logger),
		// скачивание может длиться долго — WriteTimeout не ставим,
		// остальные таймауты защищают от вялых клиентов
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
