package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"blog-content-be/internal/dto"
	"blog-content-be/internal/entity"
	"blog-content-be/internal/pkg/logger"
	"blog-content-be/internal/pkg/serverutils"
	"blog-content-be/internal/repository/specification"
	"blog-content-be/internal/repository/unitofwork"
	"blog-content-be/pkg/events"
	pktNats "blog-content-be/pkg/nats"
	"blog-content-be/pkg/richtext"

	"github.com/google/uuid"
)

type IArticleService interface {
	Create(ctx context.Context, authorId uuid.UUID, req *dto.CreateArticleRequest) (*dto.CreateArticleResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowArticleResponse, error)
	Update(ctx context.Context, authorId uuid.UUID, req *dto.UpdateArticleRequest) (*dto.UpdateArticleResponse, error)
	Publish(ctx context.Context, authorId uuid.UUID, id uuid.UUID) (*dto.PublishArticleResponse, error)
	Unpublish(ctx context.Context, authorId uuid.UUID, id uuid.UUID) (*dto.UnpublishArticleResponse, error)
	Delete(ctx context.Context, authorId uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, req *dto.ListArticlesRequest) (*dto.ListArticlesResponse, error)
	Rendered(ctx context.Context, slug string) (*dto.RenderedArticleResponse, error)
	Preview(ctx context.Context, req *dto.PreviewArticleRequest) (*dto.PreviewArticleResponse, error)
}

type articleService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	renderService    IRenderService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewArticleService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	renderService IRenderService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IArticleService {
	return &articleService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		renderService:    renderService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *articleService) Create(ctx context.Context, authorId uuid.UUID, req *dto.CreateArticleRequest) (*dto.CreateArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slug, err := s.uniqueSlug(ctx, uow, req.Title)
	if err != nil {
		return nil, err
	}

	article := entity.Article{
		Id:        uuid.New(),
		Title:     req.Title,
		Slug:      slug,
		Content:   req.Content,
		Status:    entity.ArticleStatusDraft,
		AuthorId:  authorId,
		CreatedAt: time.Now(),
	}

	if err := uow.ArticleRepository().Create(ctx, &article); err != nil {
		return nil, err
	}

	if err := s.enqueueReadingTime(ctx, article.Id); err != nil {
		return nil, err
	}

	return &dto.CreateArticleResponse{
		Id:   article.Id,
		Slug: article.Slug,
	}, nil
}

func (s *articleService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	article, err := uow.ArticleRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, serverutils.ErrNotFound
	}

	return &dto.ShowArticleResponse{
		Id:          article.Id,
		Title:       article.Title,
		Slug:        article.Slug,
		Content:     article.Content,
		Status:      article.Status,
		WordCount:   article.WordCount,
		ReadingTime: article.ReadingTime,
		AuthorId:    article.AuthorId,
		PublishedAt: article.PublishedAt,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}, nil
}

func (s *articleService) Update(ctx context.Context, authorId uuid.UUID, req *dto.UpdateArticleRequest) (*dto.UpdateArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.ArticleRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ArticleOwnedByAuthor{AuthorID: authorId},
	)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, serverutils.ErrNotFound
	}

	now := time.Now()
	article.Title = req.Title
	article.Content = req.Content
	article.UpdatedAt = &now

	if err := uow.ArticleRepository().Update(ctx, article); err != nil {
		return nil, err
	}

	s.renderService.Invalidate(ctx, article.Id)

	if err := s.enqueueReadingTime(ctx, article.Id); err != nil {
		return nil, err
	}

	return &dto.UpdateArticleResponse{
		Id:   article.Id,
		Slug: article.Slug,
	}, nil
}

func (s *articleService) Publish(ctx context.Context, authorId uuid.UUID, id uuid.UUID) (*dto.PublishArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.ArticleRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ArticleOwnedByAuthor{AuthorID: authorId},
	)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, serverutils.ErrNotFound
	}

	now := time.Now()
	article.Status = entity.ArticleStatusPublished
	article.PublishedAt = &now
	article.UpdatedAt = &now

	if err := uow.ArticleRepository().Update(ctx, article); err != nil {
		return nil, err
	}

	s.renderService.Invalidate(ctx, article.Id)

	if err := s.enqueueReadingTime(ctx, article.Id); err != nil {
		return nil, err
	}

	// Notify other systems (sitemap, feeds, cache warmers). This is
	// auxiliary: a failed event never fails the publish itself.
	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeArticlePublished,
			Data: map[string]interface{}{
				"article_id": article.Id,
				"slug":       article.Slug,
				"title":      article.Title,
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("article", "failed to publish ARTICLE_PUBLISHED event", map[string]interface{}{
				"article_id": article.Id,
				"error":      err.Error(),
			})
		}
	}

	return &dto.PublishArticleResponse{
		Id:          article.Id,
		Status:      article.Status,
		PublishedAt: article.PublishedAt,
	}, nil
}

func (s *articleService) Unpublish(ctx context.Context, authorId uuid.UUID, id uuid.UUID) (*dto.UnpublishArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.ArticleRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ArticleOwnedByAuthor{AuthorID: authorId},
	)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, serverutils.ErrNotFound
	}

	now := time.Now()
	article.Status = entity.ArticleStatusDraft
	article.PublishedAt = nil
	article.UpdatedAt = &now

	if err := uow.ArticleRepository().Update(ctx, article); err != nil {
		return nil, err
	}

	s.renderService.Invalidate(ctx, article.Id)

	// Back to draft means the stored estimate resets to zero.
	if err := s.enqueueReadingTime(ctx, article.Id); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeArticleUnpublished,
			Data: map[string]interface{}{
				"article_id": article.Id,
				"slug":       article.Slug,
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("article", "failed to publish ARTICLE_UNPUBLISHED event", map[string]interface{}{
				"article_id": article.Id,
				"error":      err.Error(),
			})
		}
	}

	return &dto.UnpublishArticleResponse{
		Id:     article.Id,
		Status: article.Status,
	}, nil
}

func (s *articleService) Delete(ctx context.Context, authorId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.ArticleRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ArticleOwnedByAuthor{AuthorID: authorId},
	)
	if err != nil {
		return err
	}
	if article == nil {
		return serverutils.ErrNotFound
	}

	if err := uow.ArticleRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.renderService.Invalidate(ctx, id)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeArticleDeleted,
			Data: map[string]interface{}{
				"article_id": id,
				"slug":       article.Slug,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("article", "failed to publish ARTICLE_DELETED event", map[string]interface{}{
				"article_id": id,
				"error":      err.Error(),
			})
		}
	}

	return nil
}

func (s *articleService) List(ctx context.Context, req *dto.ListArticlesRequest) (*dto.ListArticlesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	specs := []specification.Specification{}
	if req.Status != "" {
		specs = append(specs, specification.ByStatus{Status: req.Status})
	}
	if req.Title != "" {
		specs = append(specs, specification.ByTitle{Title: req.Title})
	}

	total, err := uow.ArticleRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)

	articles, err := uow.ArticleRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ArticleListItem, len(articles))
	for i, a := range articles {
		items[i] = dto.ArticleListItem{
			Id:          a.Id,
			Title:       a.Title,
			Slug:        a.Slug,
			Status:      a.Status,
			ReadingTime: a.ReadingTime,
			PublishedAt: a.PublishedAt,
			CreatedAt:   a.CreatedAt,
		}
	}

	return &dto.ListArticlesResponse{
		Articles: items,
		Total:    total,
	}, nil
}

func (s *articleService) Rendered(ctx context.Context, slug string) (*dto.RenderedArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.ArticleRepository().FindOne(ctx,
		specification.BySlug{Slug: slug},
		specification.ByStatus{Status: entity.ArticleStatusPublished},
	)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, serverutils.ErrNotFound
	}

	return s.renderService.RenderArticle(ctx, article)
}

func (s *articleService) Preview(ctx context.Context, req *dto.PreviewArticleRequest) (*dto.PreviewArticleResponse, error) {
	return s.renderService.Preview(ctx, req.Content)
}

// uniqueSlug derives the article slug from the title and suffixes a
// short random fragment on collision. Unlike heading anchors, article
// slugs are database-unique.
func (s *articleService) uniqueSlug(ctx context.Context, uow unitofwork.UnitOfWork, title string) (string, error) {
	slug := richtext.Slugify(title)
	if slug == "" {
		slug = "untitled"
	}

	existing, err := uow.ArticleRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return "", err
	}
	if existing == nil {
		return slug, nil
	}

	return fmt.Sprintf("%s-%s", slug, uuid.NewString()[:8]), nil
}

func (s *articleService) enqueueReadingTime(ctx context.Context, articleId uuid.UUID) error {
	payload := dto.ComputeReadingTimeMessage{ArticleId: articleId}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payloadJson)
}
