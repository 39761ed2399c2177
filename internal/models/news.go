// Package models contains data structures for the application's domain models.
package models

import "time"

// News represents a published article. The owning user is fixed at creation
// and is the only identity allowed to update or delete the record.
type News struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Image       string    `json:"image"`
	Category    string    `gorm:"index" json:"category"`
	IsPublished bool      `gorm:"not null;default:true" json:"is_published"`
	Comments    []Comment `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewsPage is a page of articles with Laravel-style pagination metadata.
type NewsPage struct {
	Items       []*News `json:"items"`
	Total       int64   `json:"total"`
	CurrentPage int     `json:"current_page"`
	PerPage     int     `json:"per_page"`
	LastPage    int     `json:"last_page"`
}
