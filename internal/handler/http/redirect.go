package http

import (
	"ShortURL-Backend/internal/domain"
	"ShortURL-Backend/internal/repository"
	"ShortURL-Backend/internal/service"
	"errors"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// RedirectHandler обработчик редиректов
type RedirectHandler struct {
	urlShortener *service.URLShortenerService
	log          *zap.Logger
}

// NewRedirectHandler создает новый обработчик редиректов
func NewRedirectHandler(urlShortener *service.URLShortenerService, log *zap.Logger) *RedirectHandler {
	return &RedirectHandler{
		urlShortener: urlShortener,
		log:          log,
	}
}

// HandleRedirect обрабатывает редирект по alias
//
//	@Summary		Redirect by alias
//	@Description	Redirect to the original URL and record the click
//	@Tags			Redirect
//	@Param			alias	path	string	true	"Link alias"
//	@Success		302		"Redirect to the original URL"
//	@Failure		404		{object}	string	"Link not found or expired"
//	@Router			/{alias} [get]
func (h *RedirectHandler) HandleRedirect(w http.ResponseWriter, r *http.Request) {
	alias := strings.TrimPrefix(r.URL.Path, "/")

	// Корень отвечает приветствием, а не редиректом
	if alias == "" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte("Hello shortener...")); err != nil {
			h.log.Error("failed to write greeting", zap.Error(err))
		}
		return
	}

	// Системные endpoints и вложенные пути не являются алиасами
	if strings.Contains(alias, "/") || isSystemPath(r.URL.Path) {
		http.NotFound(w, r)
		return
	}

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	click := &domain.Click{
		IP: extractIPAddress(r),
	}
	if userAgent := r.UserAgent(); userAgent != "" {
		click.UserAgent = &userAgent
	}
	if referer := r.Referer(); referer != "" {
		click.Referer = &referer
	}

	originalURL, err := h.urlShortener.Redirect(r.Context(), alias, click)
	if err != nil {
		// Истекшая ссылка дает тот же 404, что и отсутствующая
		if errors.Is(err, repository.ErrAliasNotFound) {
			h.log.Debug("alias not found or expired", zap.String("alias", alias))
			http.NotFound(w, r)
			return
		}
		h.log.Error("failed to process redirect", zap.String("alias", alias), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.log.Info("successful redirect",
		zap.String("alias", alias),
		zap.String("original_url", originalURL),
		zap.String("ip", click.IP))

	http.Redirect(w, r, originalURL, http.StatusFound)
}

// extractIPAddress извлекает IP адрес из запроса с учетом прокси.
// Если адрес определить не удалось, возвращает domain.UnknownIP.
func extractIPAddress(r *http.Request) string {
	// Проверяем заголовки прокси в порядке приоритета
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		// X-Forwarded-For может содержать список IP через запятую
		ips := strings.Split(ip, ",")
		if first := strings.TrimSpace(ips[0]); first != "" {
			return first
		}
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}

	if r.RemoteAddr == "" {
		return domain.UnknownIP
	}

	// Fallback к RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
