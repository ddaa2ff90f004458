package dto

import (
	"time"

	"blog-content-be/pkg/richtext"

	"github.com/google/uuid"
)

type CreateArticleRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type CreateArticleResponse struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

type UpdateArticleRequest struct {
	Id      uuid.UUID
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type UpdateArticleResponse struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

type PublishArticleResponse struct {
	Id          uuid.UUID  `json:"id"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
}

type UnpublishArticleResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type ShowArticleResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Status      string     `json:"status"`
	WordCount   int        `json:"word_count"`
	ReadingTime int        `json:"reading_time"`
	AuthorId    uuid.UUID  `json:"author_id"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ListArticlesRequest struct {
	Status string `query:"status"`
	Title  string `query:"title"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type ArticleListItem struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Status      string     `json:"status"`
	ReadingTime int        `json:"reading_time"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ListArticlesResponse struct {
	Articles []ArticleListItem `json:"articles"`
	Total    int64             `json:"total"`
}

// RenderedArticleResponse is the read-time projection: markup, TOC and
// the stored reading-time estimate.
type RenderedArticleResponse struct {
	Id          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Slug        string                `json:"slug"`
	HTML        string                `json:"html"`
	TOC         []richtext.TOCHeading `json:"toc"`
	ReadingTime int                   `json:"reading_time"`
	PublishedAt *time.Time            `json:"published_at"`
}

type PreviewArticleRequest struct {
	Content string `json:"content" validate:"required"`
}

type PreviewArticleResponse struct {
	HTML string                `json:"html"`
	TOC  []richtext.TOCHeading `json:"toc"`
}

// ComputeReadingTimeMessage is the write-time pipeline payload.
type ComputeReadingTimeMessage struct {
	ArticleId uuid.UUID `json:"article_id"`
}
