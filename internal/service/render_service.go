package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"blog-content-be/internal/dto"
	"blog-content-be/internal/entity"
	"blog-content-be/internal/pkg/logger"
	"blog-content-be/pkg/richtext"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type IRenderService interface {
	RenderArticle(ctx context.Context, article *entity.Article) (*dto.RenderedArticleResponse, error)
	Preview(ctx context.Context, content string) (*dto.PreviewArticleResponse, error)
	Invalidate(ctx context.Context, articleId uuid.UUID)
}

// renderService produces the read-time projection of an article:
// rendered HTML plus the TOC derived from the same tree. Results are
// cached in Redis per article; the cache is best effort and rendering
// proceeds when Redis is unavailable.
type renderService struct {
	renderer *richtext.Renderer
	rdb      *redis.Client
	cacheTTL time.Duration
	logger   logger.ILogger
}

func NewRenderService(
	renderer *richtext.Renderer,
	rdb *redis.Client,
	cacheTTL time.Duration,
	log logger.ILogger,
) IRenderService {
	return &renderService{
		renderer: renderer,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

func renderCacheKey(articleId uuid.UUID) string {
	return fmt.Sprintf("render:article:%s", articleId)
}

func (s *renderService) RenderArticle(ctx context.Context, article *entity.Article) (*dto.RenderedArticleResponse, error) {
	key := renderCacheKey(article.Id)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var res dto.RenderedArticleResponse
			if err := json.Unmarshal([]byte(cached), &res); err == nil {
				return &res, nil
			}
			// Corrupt cache entry; fall through to a fresh render.
			s.rdb.Del(ctx, key)
		}
	}

	html, toc := s.render(ctx, article.Content)

	res := &dto.RenderedArticleResponse{
		Id:          article.Id,
		Title:       article.Title,
		Slug:        article.Slug,
		HTML:        html,
		TOC:         toc,
		ReadingTime: article.ReadingTime,
		PublishedAt: article.PublishedAt,
	}

	if s.rdb != nil {
		if data, err := json.Marshal(res); err == nil {
			if err := s.rdb.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("render", "failed to cache rendered article", map[string]interface{}{
					"article_id": article.Id,
					"error":      err.Error(),
				})
			}
		}
	}

	return res, nil
}

func (s *renderService) Preview(ctx context.Context, content string) (*dto.PreviewArticleResponse, error) {
	html, toc := s.render(ctx, content)
	return &dto.PreviewArticleResponse{
		HTML: html,
		TOC:  toc,
	}, nil
}

func (s *renderService) Invalidate(ctx context.Context, articleId uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, renderCacheKey(articleId)).Err(); err != nil {
		s.logger.Warn("render", "failed to invalidate render cache", map[string]interface{}{
			"article_id": articleId,
			"error":      err.Error(),
		})
	}
}

// render parses the stored document and derives markup and TOC from
// the same tree. Unparseable content renders as nothing, matching the
// "missing content is no content" policy.
func (s *renderService) render(ctx context.Context, content string) (string, []richtext.TOCHeading) {
	if content == "" {
		return "", []richtext.TOCHeading{}
	}

	doc, err := richtext.ParseDocument(content)
	if err != nil {
		s.logger.Warn("render", "article content is not a rich-text document", map[string]interface{}{
			"error": err.Error(),
		})
		return "", []richtext.TOCHeading{}
	}

	return s.renderer.RenderHTML(ctx, doc), richtext.ExtractHeadings(doc)
}
