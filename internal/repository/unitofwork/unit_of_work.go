package unitofwork

import (
	"context"

	"blog-content-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ArticleRepository() contract.ArticleRepository
}
