package memory

import (
	"ShortURL-Backend/internal/domain"
	"ShortURL-Backend/internal/repository"
	"context"
	"sort"
	"sync"
	"time"
)

// MemStorage хранит ссылки и клики в памяти. Используется в тестах
// и как хранилище для локального запуска без PostgreSQL.
type MemStorage struct {
	mu           sync.RWMutex
	links        map[string]*domain.Link
	clicks       map[int64][]*domain.Click
	linkCounter  int64
	clickCounter int64
}

func New() *MemStorage {
	return &MemStorage{
		links:  make(map[string]*domain.Link),
		clicks: make(map[int64][]*domain.Click),
	}
}

// --- Link Methods ---

func (s *MemStorage) SaveLink(_ context.Context, link *domain.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.links[link.Alias]; exists {
		return repository.ErrAliasExists
	}

	s.linkCounter++
	link.ID = s.linkCounter
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now()
	}

	stored := *link
	s.links[link.Alias] = &stored
	return nil
}

func (s *MemStorage) GetLink(_ context.Context, alias string) (*domain.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	link, ok := s.links[alias]
	if !ok {
		return nil, repository.ErrAliasNotFound
	}

	copied := *link
	return &copied, nil
}

func (s *MemStorage) AliasExists(_ context.Context, alias string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.links[alias]
	return ok, nil
}

func (s *MemStorage) DeleteLink(_ context.Context, alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[alias]
	if !ok {
		return repository.ErrAliasNotFound
	}

	// Каскадное удаление кликов вместе со ссылкой
	delete(s.clicks, link.ID)
	delete(s.links, alias)
	return nil
}

func (s *MemStorage) ListLinks(_ context.Context) ([]*domain.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := make([]*domain.Link, 0, len(s.links))
	for _, link := range s.links {
		copied := *link
		links = append(links, &copied)
	}

	return links, nil
}

// --- Click Methods ---

func (s *MemStorage) RecordClick(_ context.Context, alias string, click *domain.Click) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[alias]
	if !ok {
		return repository.ErrAliasNotFound
	}

	link.ClickCount++

	s.clickCounter++
	click.ID = s.clickCounter
	click.LinkID = link.ID
	if click.ClickedAt.IsZero() {
		click.ClickedAt = time.Now()
	}

	stored := *click
	s.clicks[link.ID] = append(s.clicks[link.ID], &stored)
	return nil
}

func (s *MemStorage) ListRecentClicks(_ context.Context, linkID int64, limit int) ([]*domain.Click, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.clicks[linkID]
	recent := make([]*domain.Click, 0, len(all))
	for _, click := range all {
		copied := *click
		recent = append(recent, &copied)
	}

	// Новые первыми; при равных метках времени побеждает больший ID
	sort.Slice(recent, func(i, j int) bool {
		if recent[i].ClickedAt.Equal(recent[j].ClickedAt) {
			return recent[i].ID > recent[j].ID
		}
		return recent[i].ClickedAt.After(recent[j].ClickedAt)
	})

	if limit >= 0 && len(recent) > limit {
		recent = recent[:limit]
	}

	return recent, nil
}
