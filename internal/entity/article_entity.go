package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

type Article struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Slug        string
	Content     string // rich-text document JSON ({"root": {...}})
	Status      string // draft | published
	WordCount   int
	ReadingTime int // minutes, rounded up
	AuthorId    uuid.UUID `gorm:"type:uuid;index"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
