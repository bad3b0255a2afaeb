package http

import (
	"ShortURL-Backend/internal/repository"
	"ShortURL-Backend/internal/service"
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Server HTTP сервер с обработчиками
type Server struct {
	linksHandler    *LinksHandler
	redirectHandler *RedirectHandler
	healthHandler   *HealthHandler
	log             *zap.Logger
}

// NewServer создает новый HTTP сервер
func NewServer(
	storage repository.Storage,
	urlShortener *service.URLShortenerService,
	log *zap.Logger,
	baseURL string,
) *Server {
	return &Server{
		linksHandler:    NewLinksHandler(urlShortener, log, baseURL),
		redirectHandler: NewRedirectHandler(urlShortener, log),
		healthHandler:   NewHealthHandler(storage, log),
		log:             log,
	}
}

// SetupRoutes настраивает маршруты
func (s *Server) SetupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Health checks
	mux.HandleFunc("/health", s.healthHandler.Health)
	mux.HandleFunc("/ready", s.healthHandler.Ready)

	// Swagger документация
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// API endpoints
	mux.HandleFunc("/shorten", CORS(s.linksHandler.CreateLink))
	mux.HandleFunc("/urls", CORS(s.linksHandler.ListLinks))
	mux.HandleFunc("/info/", CORS(s.linksHandler.GetInfo))
	mux.HandleFunc("/analytics/", CORS(s.linksHandler.GetAnalytics))
	mux.HandleFunc("/delete/", CORS(s.linksHandler.DeleteLink))

	// Redirect endpoint - должен быть последним
	mux.HandleFunc("/", s.redirectHandler.HandleRedirect)

	return mux
}

// isSystemPath проверяет, что путь принадлежит служебным endpoints.
// Пути без завершающего слеша сравниваются точно, чтобы алиасы вида
// "urls2" или "healthz" оставались доступными для редиректа.
func isSystemPath(path string) bool {
	exactPaths := []string{
		"/shorten",
		"/urls",
		"/health",
		"/ready",
	}

	for _, exactPath := range exactPaths {
		if path == exactPath {
			return true
		}
	}

	prefixPaths := []string{
		"/info/",
		"/analytics/",
		"/delete/",
		"/swagger/",
	}

	for _, prefixPath := range prefixPaths {
		if strings.HasPrefix(path, prefixPath) {
			return true
		}
	}

	return false
}
