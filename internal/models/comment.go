// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment represents a remark on an article. Write authorization belongs to
// the comment's own author, independent of the article's author.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	NewsID    uint      `gorm:"not null;index" json:"news_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	News      *News     `gorm:"foreignKey:NewsID" json:"news,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
