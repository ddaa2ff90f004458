package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"blog-content-be/internal/entity"
	"blog-content-be/internal/repository/specification"
	"blog-content-be/internal/repository/unitofwork"
	"blog-content-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestArticleRepository(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())
	assert.NotNil(t, uow.ArticleRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	ctx := context.Background()
	authorId := uuid.New()
	slug := "integration-article-" + uuid.New().String()

	article := &entity.Article{
		Id:       uuid.New(),
		Title:    "Integration Article",
		Slug:     slug,
		Content:  `{"root":{"type":"root","children":[{"type":"paragraph","children":[{"type":"text","text":"integration body"}]}]}}`,
		Status:   entity.ArticleStatusDraft,
		AuthorId: authorId,
	}

	t.Run("Create and FindOne by slug", func(t *testing.T) {
		err := uow.ArticleRepository().Create(ctx, article)
		assert.NoError(t, err)

		found, err := uow.ArticleRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, article.Id, found.Id)
			assert.Equal(t, entity.ArticleStatusDraft, found.Status)
		}
	})

	t.Run("Update to published", func(t *testing.T) {
		now := time.Now().UTC()
		article.Status = entity.ArticleStatusPublished
		article.PublishedAt = &now
		article.WordCount = 2
		article.ReadingTime = 1

		err := uow.ArticleRepository().Update(ctx, article)
		assert.NoError(t, err)

		found, err := uow.ArticleRepository().FindOne(ctx,
			specification.BySlug{Slug: slug},
			specification.ByStatus{Status: entity.ArticleStatusPublished},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, 1, found.ReadingTime)
			assert.NotNil(t, found.PublishedAt)
		}
	})

	t.Run("Count by author", func(t *testing.T) {
		count, err := uow.ArticleRepository().Count(ctx, specification.ArticleOwnedByAuthor{AuthorID: authorId})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Filter by title", func(t *testing.T) {
		found, err := uow.ArticleRepository().FindAll(ctx,
			specification.ByTitle{Title: "Integration Article"},
			specification.ArticleOwnedByAuthor{AuthorID: authorId},
		)
		assert.NoError(t, err)
		if assert.Len(t, found, 1) {
			assert.Equal(t, article.Id, found[0].Id)
		}
	})

	t.Run("Soft delete hides from lookups", func(t *testing.T) {
		err := uow.ArticleRepository().Delete(ctx, article.Id)
		assert.NoError(t, err)

		found, err := uow.ArticleRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Transactional rollback discards create", func(t *testing.T) {
		txUow := uowFactory.NewUnitOfWork(ctx)
		assert.NoError(t, txUow.Begin(ctx))

		rollbackSlug := "integration-rollback-" + uuid.New().String()
		err := txUow.ArticleRepository().Create(ctx, &entity.Article{
			Id:       uuid.New(),
			Title:    "Rollback Article",
			Slug:     rollbackSlug,
			Status:   entity.ArticleStatusDraft,
			AuthorId: authorId,
		})
		assert.NoError(t, err)
		assert.NoError(t, txUow.Rollback())

		found, err := uow.ArticleRepository().FindOne(ctx, specification.BySlug{Slug: rollbackSlug})
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}
