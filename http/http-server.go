package http

import (
	"log/slog"
	"net/http"

	"github.com/codeclash/backend/auth"
	challengehttp "github.com/codeclash/backend/challenge/http"
	"github.com/codeclash/backend/httpjson"
	"github.com/codeclash/backend/logger"
	"github.com/codeclash/backend/planglist"
	questionhttp "github.com/codeclash/backend/question/http"
	submhttp "github.com/codeclash/backend/subm/http"
	userhttp "github.com/codeclash/backend/user/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
)

type HttpServer struct {
	router *chi.Mux
}

// FeatureHandler registers a feature's routes on the shared router.
type FeatureHandler interface {
	RegisterRoutes(r chi.Router)
}

func NewHttpServer(
	jwtKey []byte,
	allowedOrigins []string,
	userHandler *userhttp.UserHttpHandler,
	challengeHandler *challengehttp.ChallengeHttpHandler,
	questionHandler *questionhttp.QuestionHttpHandler,
	submHandler *submhttp.SubmHttpHandler,
) *HttpServer {
	router := chi.NewRouter()

	httpLogger := httplog.NewLogger("codeclash", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(middleware.RequestID)
	router.Use(httplog.RequestLogger(httpLogger))
	router.Use(requestLoggerToContext)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	router.Get("/health", handleHealth)
	router.Get("/languages", handleListLanguages)

	for _, h := range []FeatureHandler{
		userHandler,
		challengeHandler,
		questionHandler,
		submHandler,
	} {
		h.RegisterRoutes(router)
	}

	return &HttpServer{router: router}
}

func (s *HttpServer) Router() *chi.Mux {
	return s.router
}

func (s *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}

// requestLoggerToContext seeds the context logger with the request id so
// that service-layer log lines correlate with the access log.
func requestLoggerToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteSuccessJson(w, map[string]string{"health": "ok"})
}

type programmingLang struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Version  string `json:"version"`
}

func handleListLanguages(w http.ResponseWriter, r *http.Request) {
	langs := planglist.ListProgrammingLanguages()
	response := make([]programmingLang, 0, len(langs))
	for _, l := range langs {
		response = append(response, programmingLang{
			ID:       l.ID,
			FullName: l.FullName,
			Version:  l.Version,
		})
	}
	httpjson.WriteSuccessJson(w, response)
}
