package mapper

import (
	"testing"
	"time"

	"blog-content-be/internal/entity"
	"blog-content-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestArticleMapperRoundTrip(t *testing.T) {
	m := NewArticleMapper()

	now := time.Now().UTC().Truncate(time.Second)
	published := now.Add(-time.Hour)

	src := &model.Article{
		Id:          uuid.New(),
		Title:       "Getting Started",
		Slug:        "getting-started",
		Content:     `{"root":{"type":"root","children":[]}}`,
		Status:      entity.ArticleStatusPublished,
		WordCount:   305,
		ReadingTime: 2,
		AuthorId:    uuid.New(),
		PublishedAt: &published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	e := m.ToEntity(src)
	assert.Equal(t, src.Id, e.Id)
	assert.Equal(t, src.Slug, e.Slug)
	assert.Equal(t, src.WordCount, e.WordCount)
	assert.Equal(t, src.ReadingTime, e.ReadingTime)
	assert.False(t, e.IsDeleted)
	assert.NotNil(t, e.UpdatedAt)

	back := m.ToModel(e)
	assert.Equal(t, src.Id, back.Id)
	assert.Equal(t, src.Title, back.Title)
	assert.Equal(t, src.Status, back.Status)
	assert.Equal(t, src.PublishedAt, back.PublishedAt)
	assert.False(t, back.DeletedAt.Valid)
}

func TestArticleMapperSoftDelete(t *testing.T) {
	m := NewArticleMapper()

	deleted := time.Now().UTC()
	src := &model.Article{
		Id:        uuid.New(),
		Title:     "Gone",
		Slug:      "gone",
		Status:    entity.ArticleStatusDraft,
		DeletedAt: gorm.DeletedAt{Time: deleted, Valid: true},
	}

	e := m.ToEntity(src)
	assert.True(t, e.IsDeleted)
	if assert.NotNil(t, e.DeletedAt) {
		assert.Equal(t, deleted, *e.DeletedAt)
	}

	back := m.ToModel(e)
	assert.True(t, back.DeletedAt.Valid)
}

func TestArticleMapperNil(t *testing.T) {
	m := NewArticleMapper()

	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
	assert.Empty(t, m.ToEntities(nil))
	assert.Empty(t, m.ToModels(nil))
}
