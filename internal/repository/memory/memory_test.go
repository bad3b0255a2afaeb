package memory

import (
	"ShortURL-Backend/internal/domain"
	"ShortURL-Backend/internal/repository"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLink_DuplicateAlias(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.SaveLink(ctx, &domain.Link{Alias: "x", OriginalURL: "https://one.example"}))

	err := storage.SaveLink(ctx, &domain.Link{Alias: "x", OriginalURL: "https://two.example"})
	require.ErrorIs(t, err, repository.ErrAliasExists)

	// Исходная запись не изменилась
	link, err := storage.GetLink(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "https://one.example", link.OriginalURL)
}

func TestGetLink_NotFound(t *testing.T) {
	storage := New()

	_, err := storage.GetLink(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrAliasNotFound)
}

func TestRecordClick_IncrementsCount(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.SaveLink(ctx, &domain.Link{Alias: "demo", OriginalURL: "https://example.com"}))

	for i := 0; i < 3; i++ {
		require.NoError(t, storage.RecordClick(ctx, "demo", &domain.Click{IP: "1.1.1.1"}))
	}

	link, err := storage.GetLink(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, int64(3), link.ClickCount)
}

func TestRecordClick_UnknownAlias(t *testing.T) {
	storage := New()

	err := storage.RecordClick(context.Background(), "missing", &domain.Click{IP: "1.1.1.1"})
	require.ErrorIs(t, err, repository.ErrAliasNotFound)
}

func TestListRecentClicks_OrderAndLimit(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.SaveLink(ctx, &domain.Link{Alias: "demo", OriginalURL: "https://example.com"}))
	link, err := storage.GetLink(ctx, "demo")
	require.NoError(t, err)

	base := time.Now()
	for i := 1; i <= 6; i++ {
		click := &domain.Click{
			IP:        fmt.Sprintf("%d.%d.%d.%d", i, i, i, i),
			ClickedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, storage.RecordClick(ctx, "demo", click))
	}

	clicks, err := storage.ListRecentClicks(ctx, link.ID, 5)
	require.NoError(t, err)
	require.Len(t, clicks, 5)

	// Новые первыми, шестой (самый старый из оставшихся) обрезан
	ips := make([]string, len(clicks))
	for i, click := range clicks {
		ips[i] = click.IP
	}
	assert.Equal(t, []string{"6.6.6.6", "5.5.5.5", "4.4.4.4", "3.3.3.3", "2.2.2.2"}, ips)
}

func TestListRecentClicks_FewerThanLimit(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.SaveLink(ctx, &domain.Link{Alias: "demo", OriginalURL: "https://example.com"}))
	link, err := storage.GetLink(ctx, "demo")
	require.NoError(t, err)

	require.NoError(t, storage.RecordClick(ctx, "demo", &domain.Click{IP: "9.9.9.9"}))

	clicks, err := storage.ListRecentClicks(ctx, link.ID, 5)
	require.NoError(t, err)
	require.Len(t, clicks, 1)
	assert.Equal(t, "9.9.9.9", clicks[0].IP)
}

func TestDeleteLink_CascadesClicks(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.SaveLink(ctx, &domain.Link{Alias: "demo", OriginalURL: "https://example.com"}))
	link, err := storage.GetLink(ctx, "demo")
	require.NoError(t, err)

	require.NoError(t, storage.RecordClick(ctx, "demo", &domain.Click{IP: "1.1.1.1"}))
	require.NoError(t, storage.DeleteLink(ctx, "demo"))

	_, err = storage.GetLink(ctx, "demo")
	require.ErrorIs(t, err, repository.ErrAliasNotFound)

	clicks, err := storage.ListRecentClicks(ctx, link.ID, 5)
	require.NoError(t, err)
	assert.Empty(t, clicks)
}

func TestDeleteLink_NotFound(t *testing.T) {
	storage := New()

	err := storage.DeleteLink(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrAliasNotFound)
}

func TestListLinks(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.SaveLink(ctx, &domain.Link{Alias: "a", OriginalURL: "https://a.example"}))
	require.NoError(t, storage.SaveLink(ctx, &domain.Link{Alias: "b", OriginalURL: "https://b.example"}))

	links, err := storage.ListLinks(ctx)
	require.NoError(t, err)
	assert.Len(t, links, 2)
}
