package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/WylKeepStudy/KaoLaShare-backend/internal/docs"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/mw"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1/file"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1/health"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1/user"
)

func newRouter(hh *health.Handler, fh *file.Handler, uh *user.Handler, tokens domain.TokenManager, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()
	auth := mw.AuthDeps{Log: logger, Tokens: tokens}

	// health
	mux.HandleFunc("GET /v1/healthz", hh.Liveness)
	mux.HandleFunc("GET /v1/readyz", hh.Readiness)

	// user: register/login открыты, info — по токену
	mux.HandleFunc("POST /user/register", uh.Register)
	mux.HandleFunc("POST /user/login", uh.Login)
	mux.Handle("GET /user/info", mw.RequireAuth(auth, http.HandlerFunc(uh.Info)))

	// file: аватар грузится до регистрации, остальное — по токену
	mux.HandleFunc("POST /file/upload/avatar", limitBody(64<<20, fh.UploadAvatar))
	mux.Handle("POST /file/upload", mw.RequireAuth(auth, limitBody(64<<20, fh.Upload)))
	mux.Handle("GET /file/download/{fileId}", mw.RequireAuth(auth, http.HandlerFunc(fh.Download)))
	mux.Handle("GET /file/list", mw.RequireAuth(auth, http.HandlerFunc(fh.List)))

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mw.WithRequestID(mw.Logging(logger)(mux))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
