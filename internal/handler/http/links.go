package http

import (
	"ShortURL-Backend/internal/domain"
	"ShortURL-Backend/internal/repository"
	"ShortURL-Backend/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// LinksHandler обработчик для работы со ссылками
type LinksHandler struct {
	urlShortener *service.URLShortenerService
	validate     *validator.Validate
	log          *zap.Logger
	baseURL      string
}

// NewLinksHandler создает новый обработчик ссылок
func NewLinksHandler(urlShortener *service.URLShortenerService, log *zap.Logger, baseURL string) *LinksHandler {
	return &LinksHandler{
		urlShortener: urlShortener,
		validate:     validator.New(),
		log:          log,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
	}
}

// CreateLinkRequest структура запроса создания ссылки
type CreateLinkRequest struct {
	OriginalURL string `json:"originalUrl" validate:"required,url"`
	Alias       string `json:"alias,omitempty" validate:"omitempty,max=20"`
	ExpiresAt   string `json:"expiresAt,omitempty"`
}

// CreateLinkResponse структура ответа создания ссылки
type CreateLinkResponse struct {
	Alias    string `json:"alias"`
	ShortURL string `json:"shortUrl"`
}

// LinkInfo информация о ссылке
type LinkInfo struct {
	ID          int64  `json:"id"`
	Alias       string `json:"alias"`
	ShortURL    string `json:"shortUrl"`
	OriginalURL string `json:"originalUrl"`
	CreatedAt   string `json:"createdAt"`
	ExpiresAt   string `json:"expiresAt,omitempty"`
	ClickCount  int64  `json:"clickCount"`
}

// GetInfoResponse структура ответа метаданных ссылки
type GetInfoResponse struct {
	OriginalURL string `json:"originalUrl"`
	CreatedAt   string `json:"createdAt"`
	ClickCount  int64  `json:"clickCount"`
}

// GetAnalyticsResponse структура ответа аналитики
type GetAnalyticsResponse struct {
	ClickCount int64    `json:"clickCount"`
	Last5IPs   []string `json:"last5Ips"`
}

// CreateLink создает новую короткую ссылку
//
//	@Summary		Create a short link
//	@Description	Create a new shortened URL, optionally with a custom alias and expiry
//	@Tags			Links
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateLinkRequest	true	"Link creation request"
//	@Success		201		{object}	CreateLinkResponse	"Link created successfully"
//	@Failure		400		{object}	map[string]string	"Invalid request data"
//	@Failure		409		{object}	map[string]string	"Alias already exists"
//	@Router			/shorten [post]
func (h *LinksHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("invalid create link request", zap.Error(err))
		h.writeError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	// Валидация на границе: корректный абсолютный URL, алиас не длиннее 20
	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("create link request failed validation", zap.Error(err))
		h.writeError(w, "Invalid originalUrl or alias", http.StatusBadRequest)
		return
	}

	link := &domain.Link{
		OriginalURL: req.OriginalURL,
	}

	// Дата истечения может быть и в прошлом - это не ошибка
	if req.ExpiresAt != "" {
		expiresAt, err := parseExpiry(req.ExpiresAt)
		if err != nil {
			h.writeError(w, "Invalid expiresAt format. Use RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		link.ExpiresAt = &expiresAt
	}

	var customAlias *string
	if req.Alias != "" {
		customAlias = &req.Alias
	}

	alias, err := h.urlShortener.Shorten(r.Context(), link, customAlias)
	if err != nil {
		if errors.Is(err, repository.ErrAliasExists) {
			h.writeError(w, "Alias already exists", http.StatusConflict)
			return
		}
		h.log.Error("failed to create link", zap.Error(err))
		h.writeError(w, "Failed to create link", http.StatusInternalServerError)
		return
	}

	response := CreateLinkResponse{
		Alias:    alias,
		ShortURL: h.baseURL + "/" + alias,
	}

	h.log.Info("created link", zap.String("alias", alias))
	h.writeJSON(w, response, http.StatusCreated)
}

// ListLinks возвращает список всех ссылок
//
//	@Summary		List links
//	@Description	List all shortened URLs
//	@Tags			Links
//	@Produce		json
//	@Success		200	{array}	LinkInfo	"All links"
//	@Router			/urls [get]
func (h *LinksHandler) ListLinks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	links, err := h.urlShortener.ListLinks(r.Context())
	if err != nil {
		h.log.Error("failed to list links", zap.Error(err))
		h.writeError(w, "Failed to retrieve links", http.StatusInternalServerError)
		return
	}

	linkInfos := make([]LinkInfo, len(links))
	for i, link := range links {
		linkInfo := LinkInfo{
			ID:          link.ID,
			Alias:       link.Alias,
			ShortURL:    h.baseURL + "/" + link.Alias,
			OriginalURL: link.OriginalURL,
			CreatedAt:   link.CreatedAt.Format(time.RFC3339),
			ClickCount:  link.ClickCount,
		}
		if link.ExpiresAt != nil {
			linkInfo.ExpiresAt = link.ExpiresAt.Format(time.RFC3339)
		}
		linkInfos[i] = linkInfo
	}

	h.writeJSON(w, linkInfos, http.StatusOK)
}

// GetInfo возвращает метаданные ссылки
//
//	@Summary		Link info
//	@Description	Original URL, creation time and click count for an alias
//	@Tags			Links
//	@Produce		json
//	@Param			alias	path		string			true	"Link alias"
//	@Success		200		{object}	GetInfoResponse	"Link metadata"
//	@Failure		404		{object}	map[string]string	"Link not found"
//	@Router			/info/{alias} [get]
func (h *LinksHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	alias, ok := aliasFromPath(r.URL.Path, "/info/")
	if !ok {
		h.writeError(w, "Alias is required", http.StatusBadRequest)
		return
	}

	// Инфо доступно и для истекших ссылок
	link, err := h.urlShortener.GetInfo(r.Context(), alias)
	if err != nil {
		if errors.Is(err, repository.ErrAliasNotFound) {
			h.writeError(w, "Link not found", http.StatusNotFound)
			return
		}
		h.log.Error("failed to get link info", zap.String("alias", alias), zap.Error(err))
		h.writeError(w, "Failed to retrieve link", http.StatusInternalServerError)
		return
	}

	response := GetInfoResponse{
		OriginalURL: link.OriginalURL,
		CreatedAt:   link.CreatedAt.Format(time.RFC3339),
		ClickCount:  link.ClickCount,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// GetAnalytics возвращает статистику переходов по ссылке
//
//	@Summary		Link analytics
//	@Description	Click count and the IPs of the five most recent clicks, newest first
//	@Tags			Links
//	@Produce		json
//	@Param			alias	path		string					true	"Link alias"
//	@Success		200		{object}	GetAnalyticsResponse	"Link analytics"
//	@Failure		404		{object}	map[string]string		"Link not found"
//	@Router			/analytics/{alias} [get]
func (h *LinksHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	alias, ok := aliasFromPath(r.URL.Path, "/analytics/")
	if !ok {
		h.writeError(w, "Alias is required", http.StatusBadRequest)
		return
	}

	analytics, err := h.urlShortener.GetAnalytics(r.Context(), alias)
	if err != nil {
		if errors.Is(err, repository.ErrAliasNotFound) {
			h.writeError(w, "Link not found", http.StatusNotFound)
			return
		}
		h.log.Error("failed to get analytics", zap.String("alias", alias), zap.Error(err))
		h.writeError(w, "Failed to retrieve analytics", http.StatusInternalServerError)
		return
	}

	response := GetAnalyticsResponse{
		ClickCount: analytics.ClickCount,
		Last5IPs:   analytics.LastIPs,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// DeleteLink удаляет ссылку
//
//	@Summary		Delete a link
//	@Description	Delete a link by alias together with its click history
//	@Tags			Links
//	@Param			alias	path	string	true	"Link alias"
//	@Success		204		"Link deleted successfully"
//	@Failure		404		{object}	map[string]string	"Link not found"
//	@Router			/delete/{alias} [delete]
func (h *LinksHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	alias, ok := aliasFromPath(r.URL.Path, "/delete/")
	if !ok {
		h.writeError(w, "Alias is required", http.StatusBadRequest)
		return
	}

	if err := h.urlShortener.Delete(r.Context(), alias); err != nil {
		if errors.Is(err, repository.ErrAliasNotFound) {
			h.writeError(w, "Link not found", http.StatusNotFound)
			return
		}
		h.log.Error("failed to delete link", zap.String("alias", alias), zap.Error(err))
		h.writeError(w, "Failed to delete link", http.StatusInternalServerError)
		return
	}

	h.log.Info("deleted link", zap.String("alias", alias))
	w.WriteHeader(http.StatusNoContent)
}

// Helper methods

// parseExpiry принимает полный RFC3339 или дату без времени
func parseExpiry(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// aliasFromPath извлекает алиас из пути после префикса
func aliasFromPath(path, prefix string) (string, bool) {
	alias := strings.TrimPrefix(path, prefix)
	if alias == "" || strings.Contains(alias, "/") {
		return "", false
	}
	return alias, true
}

func (h *LinksHandler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", zap.Error(err))
	}
}

func (h *LinksHandler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		h.log.Error("failed to encode error response", zap.Error(err))
	}
}
