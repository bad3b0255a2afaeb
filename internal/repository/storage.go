package repository

import (
	"ShortURL-Backend/internal/domain"
	"context"
	"errors"
)

var (
	ErrAliasNotFound = errors.New("alias not found")
	ErrAliasExists   = errors.New("alias already exists")
)

// LinkStorage хранит записи сокращенных ссылок.
// Уникальность алиаса гарантирует хранилище: SaveLink возвращает
// ErrAliasExists при попытке вставить занятый алиас, AliasExists —
// только быстрая предварительная проверка.
type LinkStorage interface {
	SaveLink(ctx context.Context, link *domain.Link) error
	GetLink(ctx context.Context, alias string) (*domain.Link, error)
	AliasExists(ctx context.Context, alias string) (bool, error)
	// DeleteLink удаляет ссылку вместе со всеми её кликами.
	DeleteLink(ctx context.Context, alias string) error
	ListLinks(ctx context.Context) ([]*domain.Link, error)
}

// ClickStorage хранит журнал кликов.
type ClickStorage interface {
	// RecordClick увеличивает счетчик кликов ссылки и добавляет запись клика.
	RecordClick(ctx context.Context, alias string, click *domain.Click) error
	// ListRecentClicks возвращает не более limit последних кликов ссылки,
	// упорядоченных по clicked_at по убыванию.
	ListRecentClicks(ctx context.Context, linkID int64, limit int) ([]*domain.Click, error)
}

// Storage объединяет оба контракта хранилища.
type Storage interface {
	LinkStorage
	ClickStorage
}

// Pinger опционально реализуется хранилищем, умеющим проверять
// доступность своего бэкенда напрямую.
type Pinger interface {
	Ping(ctx context.Context) error
}
