package bootstrap

import (
	"context"
	"log"

	"mindwell-be/internal/config"
	"mindwell-be/internal/controller"
	"mindwell-be/internal/handler"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/repository/contract"
	"mindwell-be/internal/repository/memory"
	redisrepo "mindwell-be/internal/repository/redis"
	"mindwell-be/internal/service"
	"mindwell-be/internal/websocket"
	"mindwell-be/pkg/calm"
	"mindwell-be/pkg/cms"
	"mindwell-be/pkg/llm/factory"
	pktNats "mindwell-be/pkg/nats"
	"mindwell-be/pkg/searchindex"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ArticleController controller.IArticleController
	SearchController  controller.ISearchController
	SessionController controller.ISessionController
	HotlineController controller.IHotlineController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	LiveSearchHandler *handler.LiveSearchHandler
	WebSocketHub      *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. External clients
	cmsClient := cms.NewClient(cfg.CMS.SpaceID, cfg.CMS.DeliveryToken, cfg.CMS.ManagementToken)
	indexClient := searchindex.NewClient(cfg.SearchIndex.AppID, cfg.SearchIndex.APIKey, cfg.SearchIndex.IndexName)

	llmProvider, err := factory.NewProvider(factory.Config{
		Provider: cfg.Ai.Provider,
		Model:    cfg.Ai.Model,
		ApiKey:   cfg.Ai.ApiKey,
		BaseURL:  cfg.Ai.BaseURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis (optional; sessions fall back to the in-memory store)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
			rdb = nil
		}
	}

	var sessionRepo contract.SessionRepository
	if rdb != nil {
		sessionRepo = redisrepo.NewSessionRepository(rdb, cfg.Session.TTL)
	} else {
		sessionRepo = memory.NewSessionRepository(cfg.Session.TTL)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/livesearch.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.IndexTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.IndexTopic,
		cmsClient,
		indexClient,
		natsPub,
		sysLogger,
	)

	sessionService := service.NewSessionService(sessionRepo, wsHub, sysLogger)
	hotlineDirectory := service.LoadDirectory(context.Background(), cmsClient, sysLogger)
	hotlineService := service.NewHotlineService(hotlineDirectory)
	searchService := service.NewSearchService(indexClient, sessionService, hotlineService, sysLogger)

	rewriter := calm.NewPipeline(llmProvider, sysLogger)

	// Cross-instance cache invalidation + catalog refresh (worker)
	if natsSub != nil {
		eventsService := service.NewEventsService(natsSub, rewriter, wsHub, sysLogger)
		go func() {
			if err := eventsService.Start(); err != nil {
				log.Printf("[WARN] Failed to start events consumer: %v", err)
			}
		}()
	}

	articleService := service.NewArticleService(
		cmsClient,
		indexClient,
		rewriter,
		sessionService,
		llmProvider,
		publisherService,
		natsPub,
		sysLogger,
	)

	// WebSocket handler
	liveSearchHandler := handler.NewLiveSearchHandler(searchService, wsHub, wsLogger)

	return &Container{
		ArticleController: controller.NewArticleController(articleService),
		SearchController:  controller.NewSearchController(searchService),
		SessionController: controller.NewSessionController(sessionService),
		HotlineController: controller.NewHotlineController(hotlineService),

		LiveSearchHandler: liveSearchHandler,
		WebSocketHub:      wsHub,

		ConsumerService: consumerService,
	}
}
