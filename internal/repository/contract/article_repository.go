package contract

import (
	"context"

	"blog-content-be/internal/entity"
	"blog-content-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Article, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Article, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
