package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/DhairyaS450/personal-website-sub000/internal/config"
	"github.com/DhairyaS450/personal-website-sub000/internal/controller"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/logger"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/mailer"
	"github.com/DhairyaS450/personal-website-sub000/internal/repository/implementation"
	"github.com/DhairyaS450/personal-website-sub000/internal/service"
	"github.com/DhairyaS450/personal-website-sub000/internal/websocket"
	"github.com/DhairyaS450/personal-website-sub000/pkg/credential"
	"github.com/DhairyaS450/personal-website-sub000/pkg/llm/factory"
	pktNats "github.com/DhairyaS450/personal-website-sub000/pkg/nats"
	"github.com/DhairyaS450/personal-website-sub000/pkg/ratelimit"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ContentController   controller.IContentController
	AuthController      controller.IAuthController
	ContactController   controller.IContactController
	AssistantController controller.IAssistantController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
	WebSocketHub    *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.ContactTo,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Optional infrastructure
	var natsPub service.NatsPublisher
	if cfg.App.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsPub = pub
		}
	}

	var limiter ratelimit.Limiter = ratelimit.AllowAll{}
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		// 10 attempts per minute per IP on the auth endpoint
		limiter = ratelimit.NewRedisLimiter(rdb, 10, time.Minute)
	}

	// 3. Storage: database repository behind a read-through cache
	dbRepo := implementation.NewContentRepository(db)
	cachedRepo := implementation.NewCachedContentRepository(dbRepo, 5*time.Minute)

	// 4. Credential issuance
	var issuer credential.Issuer
	if cfg.Admin.TokenMode == "jwt" && cfg.Admin.JWTSecret != "" {
		issuer = credential.NewJWTIssuer(cfg.Admin.Password, cfg.Admin.PasswordHash, cfg.Admin.JWTSecret, 24*time.Hour)
		log.Println("[INFO] Using JWT admin tokens")
	} else {
		issuer = credential.NewSharedTokenIssuer(cfg.Admin.Password, cfg.Admin.PasswordHash, cfg.Admin.Token)
		log.Println("[INFO] Using shared admin token")
	}

	// 5. LLM provider for the assistant widget
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.GeminiAPIKey,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaModel,
	)
	if err != nil {
		log.Printf("[WARN] Assistant disabled: %v", err)
	}

	// 6. WebSocket hub (content-updated push)
	wsLogger := logger.NewIsolatedLogger("logs/push.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	// 7. Services
	contentService := service.NewContentService(cachedRepo, pubSub, natsPub, sysLogger)
	authService := service.NewAuthService(issuer, sysLogger)
	contactService := service.NewContactService(emailService, sysLogger)
	assistantService := service.NewAssistantService(contentService, llmProvider, sysLogger)

	consumerService := service.NewContentEventConsumer(pubSub, cachedRepo, wsHub, sysLogger)

	// 8. Controllers
	return &Container{
		ContentController:   controller.NewContentController(contentService, issuer, wsHub, sysLogger),
		AuthController:      controller.NewAuthController(authService, limiter),
		ContactController:   controller.NewContactController(contactService),
		AssistantController: controller.NewAssistantController(assistantService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
