package mapper

import (
	"time"

	"blog-content-be/internal/entity"
	"blog-content-be/internal/model"

	"gorm.io/gorm"
)

type ArticleMapper struct{}

func NewArticleMapper() *ArticleMapper {
	return &ArticleMapper{}
}

func (m *ArticleMapper) ToEntity(a *model.Article) *entity.Article {
	if a == nil {
		return nil
	}

	var deletedAt *time.Time
	if a.DeletedAt.Valid {
		t := a.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Article{
		Id:          a.Id,
		Title:       a.Title,
		Slug:        a.Slug,
		Content:     a.Content,
		Status:      a.Status,
		WordCount:   a.WordCount,
		ReadingTime: a.ReadingTime,
		AuthorId:    a.AuthorId,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   a.DeletedAt.Valid,
	}
}

func (m *ArticleMapper) ToModel(a *entity.Article) *model.Article {
	if a == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if a.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *a.DeletedAt, Valid: true}
	} else if a.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Article{
		Id:          a.Id,
		Title:       a.Title,
		Slug:        a.Slug,
		Content:     a.Content,
		Status:      a.Status,
		WordCount:   a.WordCount,
		ReadingTime: a.ReadingTime,
		AuthorId:    a.AuthorId,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *ArticleMapper) ToEntities(articles []*model.Article) []*entity.Article {
	entities := make([]*entity.Article, len(articles))
	for i, a := range articles {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *ArticleMapper) ToModels(articles []*entity.Article) []*model.Article {
	models := make([]*model.Article, len(articles))
	for i, a := range articles {
		models[i] = m.ToModel(a)
	}
	return models
}
