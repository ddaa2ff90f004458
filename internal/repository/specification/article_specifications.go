package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ArticleOwnedByAuthor struct {
	AuthorID uuid.UUID
}

func (s ArticleOwnedByAuthor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("articles.author_id = ?", s.AuthorID)
}

type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}
