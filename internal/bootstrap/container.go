package bootstrap

import (
	"context"
	"log"
	"time"

	"blog-content-be/internal/config"
	"blog-content-be/internal/controller"
	"blog-content-be/internal/pkg/logger"
	"blog-content-be/internal/repository/unitofwork"
	"blog-content-be/internal/service"
	"blog-content-be/pkg/events"
	"blog-content-be/pkg/highlight"
	pktNats "blog-content-be/pkg/nats"
	"blog-content-be/pkg/richtext"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ArticleController controller.IArticleController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Infrastructure handles main.go may need to close
	NatsSubscriber *pktNats.Subscriber
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus (in-process, write-time pipeline)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 4. Rich-text pipeline
	budget := richtext.Budget{
		MaxDepth: cfg.Content.MaxExtractDepth,
		MaxNodes: cfg.Content.MaxExtractNodes,
		MaxChars: cfg.Content.MaxExtractChars,
	}

	highlighter := highlight.New(cfg.Content.HighlightStyle)
	renderer := richtext.NewRenderer(
		richtext.WithHighlighter(highlighter),
		richtext.WithLogger(sysLogger),
		richtext.WithSiteURL(cfg.Content.SiteOrigin),
	)

	// 5. Services
	renderService := service.NewRenderService(
		renderer,
		rdb,
		time.Duration(cfg.Content.RenderCacheTTL)*time.Second,
		sysLogger,
	)

	publisherService := service.NewPublisherService(cfg.Content.ReadingTimeTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Content.ReadingTimeTopic,
		uowFactory,
		budget,
		sysLogger,
	)

	articleService := service.NewArticleService(
		uowFactory,
		publisherService,
		renderService,
		natsPub,
		sysLogger,
	)

	// Warm the render cache when an article goes live, so the first
	// reader does not pay the render cost.
	if natsSub != nil {
		err := natsSub.Subscribe("content."+events.TypeArticlePublished, "render-cache-warmer",
			func(ctx context.Context, evt events.Event) error {
				slug, _ := evt.Payload()["slug"].(string)
				if slug == "" {
					return nil
				}
				if _, err := articleService.Rendered(ctx, slug); err != nil {
					sysLogger.Warn("bootstrap", "render cache warm-up failed", map[string]interface{}{
						"slug":  slug,
						"error": err.Error(),
					})
				}
				return nil
			})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe render cache warmer: %v", err)
		}
	}

	// 6. Controllers
	articleController := controller.NewArticleController(articleService)

	return &Container{
		ArticleController: articleController,
		ConsumerService:   consumerService,
		NatsSubscriber:    natsSub,
	}
}
