// Package container wires the application graph: config, infrastructure,
// repositories, services, handlers. Construction order matters; anything
// that fails here stops startup.
package container

import (
	"context"
	"fmt"
	"time"

	"mylibrary-backend/internal/config"
	authorhandler "mylibrary-backend/internal/domains/author/handler"
	authorrepo "mylibrary-backend/internal/domains/author/repository"
	authorservice "mylibrary-backend/internal/domains/author/service"
	bookhandler "mylibrary-backend/internal/domains/book/handler"
	bookrepo "mylibrary-backend/internal/domains/book/repository"
	bookservice "mylibrary-backend/internal/domains/book/service"
	followhandler "mylibrary-backend/internal/domains/follow/handler"
	followrepo "mylibrary-backend/internal/domains/follow/repository"
	followservice "mylibrary-backend/internal/domains/follow/service"
	languagehandler "mylibrary-backend/internal/domains/language/handler"
	languagerepo "mylibrary-backend/internal/domains/language/repository"
	languageservice "mylibrary-backend/internal/domains/language/service"
	userhandler "mylibrary-backend/internal/domains/user/handler"
	userrepo "mylibrary-backend/internal/domains/user/repository"
	userservice "mylibrary-backend/internal/domains/user/service"
	rediscache "mylibrary-backend/internal/infrastructure/cache"
	"mylibrary-backend/internal/infrastructure/database"
	"mylibrary-backend/internal/infrastructure/email"
	"mylibrary-backend/internal/notifier"
	"mylibrary-backend/pkg/jwt"
	"mylibrary-backend/pkg/logger"
)

type Container struct {
	Config *config.Config

	DB         *database.PostgresDB
	Cache      *rediscache.RedisCache
	JWTManager *jwt.Manager
	Mail       email.Sender
	Notifier   *notifier.Notifier

	AuthorHandler   *authorhandler.AuthorHandler
	LanguageHandler *languagehandler.LanguageHandler
	BookHandler     *bookhandler.BookHandler
	FollowHandler   *followhandler.FollowHandler
	UserHandler     *userhandler.UserHandler
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redisCache := rediscache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	mail := email.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)

	authorRepository := authorrepo.NewPostgresRepository(db.Pool, redisCache)
	languageRepository := languagerepo.NewPostgresRepository(db.Pool, redisCache)
	bookRepository := bookrepo.NewPostgresRepository(db.Pool, redisCache)
	followRepository := followrepo.NewPostgresRepository(db.Pool)
	userRepository := userrepo.NewPostgresRepository(db.Pool)

	bookNotifier := notifier.New(authorRepository, followRepository, mail, cfg.App.Name)

	authorService := authorservice.NewAuthorService(authorRepository)
	languageService := languageservice.NewLanguageService(languageRepository)
	bookService := bookservice.NewBookService(bookRepository, authorRepository, languageRepository, bookNotifier)
	followService := followservice.NewFollowService(followRepository)
	userService := userservice.NewUserService(userRepository, jwtManager)

	return &Container{
		Config:     cfg,
		DB:         db,
		Cache:      redisCache,
		JWTManager: jwtManager,
		Mail:       mail,
		Notifier:   bookNotifier,

		AuthorHandler:   authorhandler.NewAuthorHandler(authorService),
		LanguageHandler: languagehandler.NewLanguageHandler(languageService),
		BookHandler:     bookhandler.NewBookHandler(bookService),
		FollowHandler:   followhandler.NewFollowHandler(followService),
		UserHandler:     userhandler.NewUserHandler(userService),
	}, nil
}

// Cleanup releases infrastructure connections. Safe to call once on
// shutdown.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Warn("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
