package postgres

import (
	"ShortURL-Backend/internal/database"
	"ShortURL-Backend/internal/domain"
	"ShortURL-Backend/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PostgresStorage реализует интерфейс Storage для PostgreSQL
type PostgresStorage struct {
	db  *gorm.DB
	log *zap.Logger
}

// New создает новый экземпляр PostgreSQL storage
func New(db *gorm.DB, log *zap.Logger) *PostgresStorage {
	return &PostgresStorage{
		db:  db,
		log: log,
	}
}

// Ping проверяет доступность базы данных
func (s *PostgresStorage) Ping(ctx context.Context) error {
	return database.HealthCheck(ctx, s.db)
}

// --- Link Methods ---

// SaveLink сохраняет новую ссылку. Уникальный индекс по alias — основная
// защита от дубликатов, нарушение маппится в ErrAliasExists.
func (s *PostgresStorage) SaveLink(ctx context.Context, link *domain.Link) error {
	if err := s.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrAliasExists
		}
		s.log.Error("failed to save link", zap.String("alias", link.Alias), zap.Error(err))
		return fmt.Errorf("failed to save link: %w", err)
	}

	s.log.Info("saved new link", zap.String("alias", link.Alias))
	return nil
}

// GetLink получает ссылку по алиасу
func (s *PostgresStorage) GetLink(ctx context.Context, alias string) (*domain.Link, error) {
	var link domain.Link

	err := s.db.WithContext(ctx).Where("alias = ?", alias).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrAliasNotFound
	}
	if err != nil {
		s.log.Error("failed to get link", zap.String("alias", alias), zap.Error(err))
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	return &link, nil
}

// AliasExists проверяет, существует ли алиас
func (s *PostgresStorage) AliasExists(ctx context.Context, alias string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Link{}).Where("alias = ?", alias).Count(&count).Error
	if err != nil {
		s.log.Error("failed to check alias existence", zap.String("alias", alias), zap.Error(err))
		return false, fmt.Errorf("failed to check alias: %w", err)
	}

	return count > 0, nil
}

// DeleteLink удаляет ссылку вместе с её кликами
func (s *PostgresStorage) DeleteLink(ctx context.Context, alias string) error {
	// Клики удаляются каскадно по внешнему ключу link_id
	result := s.db.WithContext(ctx).Where("alias = ?", alias).Delete(&domain.Link{})
	if result.Error != nil {
		s.log.Error("failed to delete link", zap.String("alias", alias), zap.Error(result.Error))
		return fmt.Errorf("failed to delete link: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrAliasNotFound
	}

	s.log.Info("deleted link", zap.String("alias", alias))
	return nil
}

// ListLinks возвращает все ссылки
func (s *PostgresStorage) ListLinks(ctx context.Context) ([]*domain.Link, error) {
	var links []*domain.Link

	err := s.db.WithContext(ctx).Find(&links).Error
	if err != nil {
		s.log.Error("failed to list links", zap.Error(err))
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return links, nil
}

// --- Click Methods ---

// RecordClick увеличивает счетчик кликов и записывает клик в одной транзакции
func (s *PostgresStorage) RecordClick(ctx context.Context, alias string, click *domain.Click) error {
	tx := s.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var link domain.Link
	err := tx.Where("alias = ?", alias).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return repository.ErrAliasNotFound
	}
	if err != nil {
		tx.Rollback()
		s.log.Error("failed to get link for click recording", zap.String("alias", alias), zap.Error(err))
		return fmt.Errorf("failed to get link: %w", err)
	}

	err = tx.Model(&link).Update("click_count", gorm.Expr("click_count + 1")).Error
	if err != nil {
		tx.Rollback()
		s.log.Error("failed to update click count", zap.String("alias", alias), zap.Error(err))
		return fmt.Errorf("failed to update click count: %w", err)
	}

	click.LinkID = link.ID
	if click.ClickedAt.IsZero() {
		click.ClickedAt = time.Now()
	}

	if err := tx.Create(click).Error; err != nil {
		tx.Rollback()
		s.log.Error("failed to create click record", zap.String("alias", alias), zap.Error(err))
		return fmt.Errorf("failed to create click: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		s.log.Error("failed to commit click transaction", zap.String("alias", alias), zap.Error(err))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.log.Debug("recorded click", zap.String("alias", alias), zap.String("ip", click.IP))
	return nil
}

// ListRecentClicks возвращает последние клики ссылки, новые первыми
func (s *PostgresStorage) ListRecentClicks(ctx context.Context, linkID int64, limit int) ([]*domain.Click, error) {
	var clicks []*domain.Click

	err := s.db.WithContext(ctx).
		Where("link_id = ?", linkID).
		Order("clicked_at DESC").
		Limit(limit).
		Find(&clicks).Error
	if err != nil {
		s.log.Error("failed to list recent clicks", zap.Int64("link_id", linkID), zap.Error(err))
		return nil, fmt.Errorf("failed to list recent clicks: %w", err)
	}

	return clicks, nil
}
