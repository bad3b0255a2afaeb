package service

import (
	"ShortURL-Backend/internal/config"
	"ShortURL-Backend/internal/domain"
	"ShortURL-Backend/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStorage is a mock implementation of repository.Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveLink(ctx context.Context, link *domain.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockStorage) GetLink(ctx context.Context, alias string) (*domain.Link, error) {
	args := m.Called(ctx, alias)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *MockStorage) AliasExists(ctx context.Context, alias string) (bool, error) {
	args := m.Called(ctx, alias)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) DeleteLink(ctx context.Context, alias string) error {
	args := m.Called(ctx, alias)
	return args.Error(0)
}

func (m *MockStorage) ListLinks(ctx context.Context) ([]*domain.Link, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

func (m *MockStorage) RecordClick(ctx context.Context, alias string, click *domain.Click) error {
	args := m.Called(ctx, alias, click)
	return args.Error(0)
}

func (m *MockStorage) ListRecentClicks(ctx context.Context, linkID int64, limit int) ([]*domain.Click, error) {
	args := m.Called(ctx, linkID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Click), args.Error(1)
}

func newTestService(storage repository.Storage) *URLShortenerService {
	return NewURLShortener(storage, &config.URLShortener{
		AliasLength: 8,
		BaseURL:     "http://localhost:8080",
	})
}

func TestShorten_CustomAlias(t *testing.T) {
	storage := new(MockStorage)
	storage.On("AliasExists", mock.Anything, "my-alias").Return(false, nil)
	storage.On("SaveLink", mock.Anything, mock.AnythingOfType("*domain.Link")).Return(nil)

	svc := newTestService(storage)
	customAlias := "my-alias"

	alias, err := svc.Shorten(context.Background(), &domain.Link{OriginalURL: "https://example.com"}, &customAlias)

	require.NoError(t, err)
	assert.Equal(t, "my-alias", alias)
	storage.AssertExpectations(t)
}

func TestShorten_CustomAliasConflict(t *testing.T) {
	storage := new(MockStorage)
	storage.On("AliasExists", mock.Anything, "taken").Return(true, nil)

	svc := newTestService(storage)
	customAlias := "taken"

	_, err := svc.Shorten(context.Background(), &domain.Link{OriginalURL: "https://example.com"}, &customAlias)

	require.ErrorIs(t, err, repository.ErrAliasExists)
	storage.AssertNotCalled(t, "SaveLink", mock.Anything, mock.Anything)
}

func TestShorten_GeneratedAlias(t *testing.T) {
	storage := new(MockStorage)
	storage.On("AliasExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	storage.On("SaveLink", mock.Anything, mock.AnythingOfType("*domain.Link")).Return(nil)

	svc := newTestService(storage)
	link := &domain.Link{OriginalURL: "https://example.com"}

	alias, err := svc.Shorten(context.Background(), link, nil)

	require.NoError(t, err)
	assert.Len(t, alias, 8)
	assert.Equal(t, alias, link.Alias)
}

func TestShorten_GeneratedAliasRetriesOnCollision(t *testing.T) {
	storage := new(MockStorage)
	// Первая сгенерированная строка занята, вторая свободна
	storage.On("AliasExists", mock.Anything, mock.AnythingOfType("string")).Return(true, nil).Once()
	storage.On("AliasExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
	storage.On("SaveLink", mock.Anything, mock.AnythingOfType("*domain.Link")).Return(nil)

	svc := newTestService(storage)

	alias, err := svc.Shorten(context.Background(), &domain.Link{OriginalURL: "https://example.com"}, nil)

	require.NoError(t, err)
	assert.Len(t, alias, 8)
	storage.AssertNumberOfCalls(t, "AliasExists", 2)
}

func TestShorten_GeneratedAliasExhaustion(t *testing.T) {
	storage := new(MockStorage)
	storage.On("AliasExists", mock.Anything, mock.AnythingOfType("string")).Return(true, nil)

	svc := newTestService(storage)

	_, err := svc.Shorten(context.Background(), &domain.Link{OriginalURL: "https://example.com"}, nil)

	require.Error(t, err)
	storage.AssertNotCalled(t, "SaveLink", mock.Anything, mock.Anything)
}

func TestRedirect_RecordsClick(t *testing.T) {
	storage := new(MockStorage)
	storage.On("GetLink", mock.Anything, "demo").Return(&domain.Link{
		ID:          1,
		Alias:       "demo",
		OriginalURL: "https://example.com",
	}, nil)
	storage.On("RecordClick", mock.Anything, "demo", mock.AnythingOfType("*domain.Click")).Return(nil)

	svc := newTestService(storage)

	originalURL, err := svc.Redirect(context.Background(), "demo", &domain.Click{IP: "1.1.1.1"})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", originalURL)
	storage.AssertExpectations(t)
}

func TestRedirect_NotFound(t *testing.T) {
	storage := new(MockStorage)
	storage.On("GetLink", mock.Anything, "missing").Return(nil, repository.ErrAliasNotFound)

	svc := newTestService(storage)

	_, err := svc.Redirect(context.Background(), "missing", &domain.Click{IP: "1.1.1.1"})

	require.ErrorIs(t, err, repository.ErrAliasNotFound)
	storage.AssertNotCalled(t, "RecordClick", mock.Anything, mock.Anything, mock.Anything)
}

func TestRedirect_ExpiredLinkIsNotFound(t *testing.T) {
	expired := time.Now().Add(-time.Hour)
	storage := new(MockStorage)
	storage.On("GetLink", mock.Anything, "old").Return(&domain.Link{
		ID:          1,
		Alias:       "old",
		OriginalURL: "https://example.com",
		ExpiresAt:   &expired,
	}, nil)

	svc := newTestService(storage)

	_, err := svc.Redirect(context.Background(), "old", &domain.Click{IP: "1.1.1.1"})

	// Истекшая ссылка неотличима от отсутствующей
	require.ErrorIs(t, err, repository.ErrAliasNotFound)
	storage.AssertNotCalled(t, "RecordClick", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetInfo_ExpiredLinkStillAccessible(t *testing.T) {
	expired := time.Now().Add(-time.Hour)
	storage := new(MockStorage)
	storage.On("GetLink", mock.Anything, "old").Return(&domain.Link{
		ID:          1,
		Alias:       "old",
		OriginalURL: "https://example.com",
		ExpiresAt:   &expired,
		ClickCount:  3,
	}, nil)

	svc := newTestService(storage)

	link, err := svc.GetInfo(context.Background(), "old")

	require.NoError(t, err)
	assert.Equal(t, int64(3), link.ClickCount)
}

func TestGetAnalytics_ReturnsRecentIPs(t *testing.T) {
	storage := new(MockStorage)
	storage.On("GetLink", mock.Anything, "demo").Return(&domain.Link{
		ID:         7,
		Alias:      "demo",
		ClickCount: 6,
	}, nil)
	storage.On("ListRecentClicks", mock.Anything, int64(7), 5).Return([]*domain.Click{
		{IP: "6.6.6.6"},
		{IP: "5.5.5.5"},
		{IP: "4.4.4.4"},
		{IP: "3.3.3.3"},
		{IP: "2.2.2.2"},
	}, nil)

	svc := newTestService(storage)

	analytics, err := svc.GetAnalytics(context.Background(), "demo")

	require.NoError(t, err)
	assert.Equal(t, int64(6), analytics.ClickCount)
	assert.Equal(t, []string{"6.6.6.6", "5.5.5.5", "4.4.4.4", "3.3.3.3", "2.2.2.2"}, analytics.LastIPs)
}

func TestGetAnalytics_NotFound(t *testing.T) {
	storage := new(MockStorage)
	storage.On("GetLink", mock.Anything, "missing").Return(nil, repository.ErrAliasNotFound)

	svc := newTestService(storage)

	_, err := svc.GetAnalytics(context.Background(), "missing")

	require.ErrorIs(t, err, repository.ErrAliasNotFound)
}

func TestDelete_PropagatesNotFound(t *testing.T) {
	storage := new(MockStorage)
	storage.On("DeleteLink", mock.Anything, "missing").Return(repository.ErrAliasNotFound)

	svc := newTestService(storage)

	err := svc.Delete(context.Background(), "missing")

	require.ErrorIs(t, err, repository.ErrAliasNotFound)
}
