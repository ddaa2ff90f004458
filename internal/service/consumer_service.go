package service

import (
	"context"
	"encoding/json"
	"time"

	"blog-content-be/internal/dto"
	"blog-content-be/internal/pkg/logger"
	"blog-content-be/internal/repository/specification"
	"blog-content-be/internal/repository/unitofwork"
	"blog-content-be/pkg/richtext"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService recomputes word count and reading time whenever an
// article is written. The computation never fails the save that
// triggered it; a broken document just keeps the stored estimate at
// zero.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	budget     richtext.Budget
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	budget richtext.Budget,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		budget:     budget,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ComputeReadingTimeMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		cs.logger.Error("consumer", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.ArticleRepository().FindOne(ctx, specification.ByID{ID: payload.ArticleId})
	if err != nil {
		cs.logger.Error("consumer", "failed to load article", map[string]interface{}{
			"article_id": payload.ArticleId,
			"error":      err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}
	if article == nil {
		// Article deleted between write and processing? Ack.
		msg.Ack()
		return
	}

	result := cs.computeReadingTime(article.Content, article.Status)

	article.WordCount = result.Words
	article.ReadingTime = result.Minutes
	now := time.Now()
	article.UpdatedAt = &now

	if err := uow.ArticleRepository().Update(ctx, article); err != nil {
		cs.logger.Error("consumer", "failed to store reading time", map[string]interface{}{
			"article_id": article.Id,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer", "reading time updated", map[string]interface{}{
		"article_id":   article.Id,
		"words":        result.Words,
		"reading_time": result.Minutes,
	})
	msg.Ack()
}

// computeReadingTime parses the stored content and runs the estimate.
// Drafts never walk the tree; a document that does not parse counts as
// no content.
func (cs *consumerService) computeReadingTime(content, status string) richtext.ReadingTimeResult {
	if status != richtext.StatusPublished {
		return richtext.ReadingTimeResult{}
	}

	doc, err := richtext.ParseDocument(content)
	if err != nil {
		cs.logger.Warn("consumer", "article content is not a rich-text document", map[string]interface{}{
			"error": err.Error(),
		})
		return richtext.ReadingTimeResult{}
	}

	return richtext.EstimateReadingTime(doc, status, cs.budget, cs.logger)
}
