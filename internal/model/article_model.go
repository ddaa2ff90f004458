package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Article struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Slug        string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Content     string         `gorm:"type:text"`
	Status      string         `gorm:"type:varchar(32);not null;default:'draft';index"`
	WordCount   int            `gorm:"not null;default:0"`
	ReadingTime int            `gorm:"not null;default:0"`
	AuthorId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	PublishedAt *time.Time     `gorm:"index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Article) TableName() string {
	return "articles"
}
