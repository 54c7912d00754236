package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Auth проверяет статический bearer-токен. Пустой токен отключает проверку,
// тогда заглушечный сервер принимает любые запросы.
type Auth struct {
	token string
	log   *slog.Logger
}

func New(token string, log *slog.Logger) *Auth {
	return &Auth{
		token: token,
		log:   log.With(slog.String("component", "auth_middleware")),
	}
}

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !a.allowed(ctx.Header("Authorization")) {
			a.log.Warn("unauthorized request", slog.String("path", ctx.URL().Path))
			ctx.SetStatus(http.StatusUnauthorized)
			ctx.SetHeader("Content-Type", "application/json")

			w := ctx.BodyWriter()
			_ = json.NewEncoder(w).Encode(map[string]string{
				"detail": "Unauthorized",
			})
			return
		}

		next(ctx)
	}
}

// Handler оборачивает обычные chi-маршруты той же проверкой токена.
func (a *Auth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.allowed(r.Header.Get("Authorization")) {
			a.log.Warn("unauthorized request", slog.String("path", r.URL.Path))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"detail": "Unauthorized",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (a *Auth) allowed(header string) bool {
	if a.token == "" {
		return true
	}

	presented, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(a.token)) == 1
}
