package domain

import "time"

// Link представляет сокращенную ссылку
type Link struct {
	ID          int64      `gorm:"primaryKey;column:id" json:"id"`
	Alias       string     `gorm:"column:alias;size:20;not null;uniqueIndex" json:"alias"`
	OriginalURL string     `gorm:"column:original_url;type:text;not null" json:"original_url"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ExpiresAt   *time.Time `gorm:"column:expires_at" json:"expires_at,omitempty"`
	ClickCount  int64      `gorm:"column:click_count;not null;default:0" json:"click_count"`

	// Relationships
	Clicks []Click `gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE" json:"clicks,omitempty"`
}

// TableName возвращает название таблицы для GORM
func (Link) TableName() string {
	return "links"
}

// IsExpired сообщает, истек ли срок действия ссылки на момент now.
// Ссылка без expires_at не истекает никогда.
func (l *Link) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}
