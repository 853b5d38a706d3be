// container.go
package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/nextalk-ai/nextalk/pkg/ai/llm"
	aiopenai "github.com/nextalk-ai/nextalk/pkg/ai/providers/openai"
	"github.com/nextalk-ai/nextalk/pkg/chat"
	"github.com/nextalk-ai/nextalk/pkg/chat/chatapi"
	"github.com/nextalk-ai/nextalk/pkg/chat/chatinfra"
	"github.com/nextalk-ai/nextalk/pkg/chat/chatsrv"
	"github.com/nextalk-ai/nextalk/pkg/config"
	"github.com/nextalk-ai/nextalk/pkg/logx"
	"github.com/nextalk-ai/nextalk/pkg/memory"
	"github.com/nextalk-ai/nextalk/pkg/memory/memoryapi"
	"github.com/nextalk-ai/nextalk/pkg/memory/memoryinfra"
	"github.com/nextalk-ai/nextalk/pkg/memory/memorysrv"
	"github.com/nextalk-ai/nextalk/pkg/profile"
	"github.com/nextalk-ai/nextalk/pkg/profile/profileapi"
	"github.com/nextalk-ai/nextalk/pkg/profile/profileinfra"
	"github.com/nextalk-ai/nextalk/pkg/profile/profilesrv"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Repositories
	ProfileRepo profile.Repository
	MemoryRepo  memory.Repository
	Buffer      chat.ShortTermBuffer

	// Domain Services
	ProfileService *profilesrv.ProfileService
	MemoryService  *memorysrv.MemoryService
	ChatService    *chatsrv.ChatService

	// API Handlers
	ProfileHandlers *profileapi.ProfileHandlers
	MemoryHandlers  *memoryapi.MemoryHandlers
	ChatHandlers    *chatapi.ChatHandlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	logx.Info("🔧 Initializing dependency container...")

	c := &Container{
		Config: cfg,
	}

	c.initInfrastructure()
	c.initRepositories()
	c.initServices()

	logx.Info("✅ Container initialized successfully")
	return c
}

func (c *Container) initInfrastructure() {
	logx.Info("🏗️ Initializing infrastructure...")

	// Database is only needed when memories live in Postgres
	if c.Config.Chat.MemoryStore == config.StorePostgres {
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Config.Database.Host,
			c.Config.Database.Port,
			c.Config.Database.User,
			c.Config.Database.Password,
			c.Config.Database.Name,
			c.Config.Database.SSLMode,
		)

		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			logx.Fatalf("Failed to connect to database: %v", err)
		}
		db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
		db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
		db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)
		c.DB = db
		logx.Info("✅ Database connected")

		ctx := context.Background()
		if err := profileinfra.EnsureSchema(ctx, db); err != nil {
			logx.Fatalf("Failed to ensure profile schema: %v", err)
		}
		if err := memoryinfra.EnsureSchema(ctx, db); err != nil {
			logx.Fatalf("Failed to ensure memory schema: %v", err)
		}
		logx.Info("✅ Database schema ensured")
	}

	// Redis is only needed when the short-term buffer lives there
	if c.Config.Chat.BufferStore == config.StoreRedis {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     c.Config.Redis.Address(),
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
		if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
			logx.Fatalf("Failed to connect to Redis: %v (Redis backs the short-term buffer)", err)
		}
		logx.Info("✅ Redis connected")
	}

	logx.Info("✅ Infrastructure initialized")
}

func (c *Container) initRepositories() {
	logx.Info("🗄️  Initializing repositories...")

	switch c.Config.Chat.MemoryStore {
	case config.StorePostgres:
		c.ProfileRepo = profileinfra.NewPostgresProfileRepository(c.DB)
		c.MemoryRepo = memoryinfra.NewPostgresMemoryRepository(c.DB)
		logx.Info("✅ Using Postgres for profiles and memories")
	default:
		c.ProfileRepo = profileinfra.NewInMemoryProfileRepository()
		c.MemoryRepo = memoryinfra.NewInMemoryMemoryRepository()
		logx.Warn("⚠️  Using in-memory stores (not recommended for production)")
	}

	switch c.Config.Chat.BufferStore {
	case config.StoreRedis:
		c.Buffer = chatinfra.NewRedisShortTermBuffer(c.Redis, c.Config.Chat.ShortTermMaxMessages)
		logx.Info("✅ Using Redis short-term buffer")
	default:
		c.Buffer = chatinfra.NewInMemoryShortTermBuffer(c.Config.Chat.ShortTermMaxMessages)
		logx.Warn("⚠️  Using in-memory short-term buffer (not recommended for production)")
	}
}

func (c *Container) initServices() {
	logx.Info("⚙️  Initializing services and handlers...")

	// LLM client is optional; without an API key the gateway echoes
	var llmClient *llm.Client
	if c.Config.LLM.APIKey != "" {
		provider := aiopenai.NewOpenAIProvider(c.Config.LLM.APIKey)
		llmClient = llm.NewClient(provider)
		logx.Infof("✅ LLM provider configured (model: %s)", c.Config.LLM.Model)
	} else {
		logx.Warn("⚠️  No LLM API key configured; serving fallback echo replies")
	}
	gateway := chat.NewLLMGateway(llmClient, c.Config.LLM.Model, c.Config.LLM.Timeout)

	selector := chat.NewRecencySelector(c.MemoryRepo)
	composer := chat.NewComposer()

	c.ProfileService = profilesrv.NewProfileService(c.ProfileRepo)
	c.MemoryService = memorysrv.NewMemoryService(c.MemoryRepo, c.ProfileRepo)
	c.ChatService = chatsrv.NewChatService(
		c.Buffer,
		selector,
		composer,
		gateway,
		c.MemoryRepo,
		c.ProfileRepo,
		c.Config.Chat.TopMemories,
		c.Config.Chat.HistoryTail,
	)

	c.ProfileHandlers = profileapi.NewProfileHandlers(c.ProfileService)
	c.MemoryHandlers = memoryapi.NewMemoryHandlers(c.MemoryService)
	c.ChatHandlers = chatapi.NewChatHandlers(c.ChatService)

	logx.Info("✅ All services and handlers initialized")
}

// Cleanup closes all connections
func (c *Container) Cleanup() {
	logx.Info("🧹 Cleaning up resources...")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logx.Errorf("Error closing database: %v", err)
		} else {
			logx.Info("✅ Database connection closed")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Errorf("Error closing Redis: %v", err)
		} else {
			logx.Info("✅ Redis connection closed")
		}
	}

	logx.Info("✅ Cleanup completed")
}
