package service

import (
	"ShortURL-Backend/internal/config"
	"ShortURL-Backend/internal/domain"
	"ShortURL-Backend/internal/repository"
	"ShortURL-Backend/pkg/random"
	"context"
	"fmt"
	"time"
)

// maxRetries ограничивает генерацию алиаса. При длине 8 из 64 символов
// коллизии практически исключены, лимит защищает от вырожденных конфигураций.
const maxRetries = 10

// recentIPLimit — сколько последних IP отдает аналитика.
const recentIPLimit = 5

// Analytics - агрегированная статистика по ссылке
type Analytics struct {
	ClickCount int64
	LastIPs    []string
}

type URLShortenerService struct {
	storage repository.Storage
	config  *config.URLShortener
}

func NewURLShortener(storage repository.Storage, cfg *config.URLShortener) *URLShortenerService {
	return &URLShortenerService{
		storage: storage,
		config:  cfg,
	}
}

// Shorten создает ссылку. Кастомный алиас проверяется на занятость,
// иначе алиас генерируется с повторами до свободного. Финальная защита
// от гонки check-then-insert — уникальный индекс в хранилище:
// SaveLink вернет ErrAliasExists при конфликте.
func (s *URLShortenerService) Shorten(ctx context.Context, link *domain.Link, customAlias *string) (string, error) {
	var alias string
	if customAlias != nil && *customAlias != "" {
		alias = *customAlias
		exists, err := s.storage.AliasExists(ctx, alias)
		if err != nil {
			return "", fmt.Errorf("failed to check custom alias existence: %w", err)
		}
		if exists {
			return "", repository.ErrAliasExists
		}
	} else {
		found := false
		for i := 0; i < maxRetries; i++ {
			generated, err := random.NewRandomString(s.config.AliasLength)
			if err != nil {
				return "", fmt.Errorf("failed to generate alias: %w", err)
			}
			exists, err := s.storage.AliasExists(ctx, generated)
			if err != nil {
				return "", fmt.Errorf("failed to check alias existence: %w", err)
			}
			if !exists {
				alias = generated
				found = true
				break
			}
		}
		if !found {
			return "", fmt.Errorf("failed to generate unique alias after %d attempts", maxRetries)
		}
	}

	link.Alias = alias

	if err := s.storage.SaveLink(ctx, link); err != nil {
		return "", fmt.Errorf("failed to save link: %w", err)
	}

	return alias, nil
}

// GetLink находит ссылку по алиасу. Срок действия не проверяется:
// инфо, аналитика и удаление доступны и для истекших ссылок.
func (s *URLShortenerService) GetLink(ctx context.Context, alias string) (*domain.Link, error) {
	link, err := s.storage.GetLink(ctx, alias)
	if err != nil {
		return nil, err
	}

	return link, nil
}

// Redirect возвращает оригинальный URL и фиксирует переход: счетчик
// кликов увеличивается, клик попадает в журнал. Истекшая ссылка
// неотличима от отсутствующей.
func (s *URLShortenerService) Redirect(ctx context.Context, alias string, click *domain.Click) (string, error) {
	link, err := s.storage.GetLink(ctx, alias)
	if err != nil {
		return "", err
	}

	if link.IsExpired(time.Now()) {
		return "", repository.ErrAliasNotFound
	}

	if err := s.storage.RecordClick(ctx, alias, click); err != nil {
		return "", fmt.Errorf("failed to record click: %w", err)
	}

	return link.OriginalURL, nil
}

// GetInfo возвращает ссылку для проекции метаданных
func (s *URLShortenerService) GetInfo(ctx context.Context, alias string) (*domain.Link, error) {
	return s.GetLink(ctx, alias)
}

// ListLinks возвращает все ссылки без пагинации
func (s *URLShortenerService) ListLinks(ctx context.Context) ([]*domain.Link, error) {
	links, err := s.storage.ListLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return links, nil
}

// Delete удаляет ссылку вместе с её кликами
func (s *URLShortenerService) Delete(ctx context.Context, alias string) error {
	return s.storage.DeleteLink(ctx, alias)
}

// GetAnalytics возвращает счетчик кликов и IP последних пяти переходов,
// новые первыми
func (s *URLShortenerService) GetAnalytics(ctx context.Context, alias string) (*Analytics, error) {
	link, err := s.storage.GetLink(ctx, alias)
	if err != nil {
		return nil, err
	}

	clicks, err := s.storage.ListRecentClicks(ctx, link.ID, recentIPLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent clicks: %w", err)
	}

	lastIPs := make([]string, 0, len(clicks))
	for _, click := range clicks {
		lastIPs = append(lastIPs, click.IP)
	}

	return &Analytics{
		ClickCount: link.ClickCount,
		LastIPs:    lastIPs,
	}, nil
}
