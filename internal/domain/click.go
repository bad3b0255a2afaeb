package domain

import "time"

// UnknownIP записывается, когда IP клиента определить не удалось.
const UnknownIP = "unknown"

// Click представляет клик по сокращенной ссылке
type Click struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	LinkID    int64     `gorm:"column:link_id;not null;index" json:"link_id"`
	IP        string    `gorm:"column:ip;size:45;not null" json:"ip"` // непрозрачная строка, без валидации
	UserAgent *string   `gorm:"column:user_agent;type:text" json:"user_agent,omitempty"`
	Referer   *string   `gorm:"column:referer;size:500" json:"referer,omitempty"`
	ClickedAt time.Time `gorm:"column:clicked_at;index" json:"clicked_at"`

	// Relationships
	Link *Link `gorm:"foreignKey:LinkID" json:"link,omitempty"`
}

// TableName возвращает название таблицы для GORM
func (Click) TableName() string {
	return "clicks"
}
