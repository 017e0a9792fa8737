package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/bloggers-platform/internal/config"
	"github.com/Guyuepp/bloggers-platform/internal/repository"
	mysqlRepo "github.com/Guyuepp/bloggers-platform/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/bloggers-platform/internal/repository/redis"
	"github.com/Guyuepp/bloggers-platform/internal/rest"
	"github.com/Guyuepp/bloggers-platform/internal/rest/middleware"
	"github.com/Guyuepp/bloggers-platform/internal/rest/request"
	"github.com/Guyuepp/bloggers-platform/internal/security"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/auth"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/ban"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/blog"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/comment"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/device"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/post"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/reaction"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/user"
	"github.com/Guyuepp/bloggers-platform/internal/workers"
)

const (
	dbMaxRetry      = 10
	dbRetryInterval = 2 * time.Second
)

func openDatabase(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				return db, nil
			}
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryInterval)
	}
	return nil, err
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	// prepare database
	db, err := openDatabase(cfg.Database.DSN())
	if err != nil {
		logrus.Fatalf("could not connect to database after retries: %v", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("got error when closing the DB connection: %v", err)
		}
	}()
	if err := mysqlRepo.AutoMigrate(db); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Pass,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	blogRepo := mysqlRepo.NewBlogRepository(db)
	postRepo := repository.NewPostRepository(mysqlRepo.NewPostRepository(db))
	commentRepo := mysqlRepo.NewCommentRepository(db)
	reactionRepo := repository.NewReactionRepository(mysqlRepo.NewReactionRepository(db))
	banRepo := mysqlRepo.NewBanRepository(db)
	deviceRepo := mysqlRepo.NewDeviceRepository(db)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomBitSize)
	rateLimiter := myRedisCache.NewRateLimiter(client)

	tokens := security.NewJWTProvider(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	hasher := security.NewBcryptHasher(0)

	// Build service Layer
	aggregator := reaction.NewAggregator(reactionRepo, banRepo, userRepo)
	postSvc := post.NewService(postRepo, blogRepo, bloomRepo, aggregator)
	authSvc := auth.NewService(userRepo, deviceRepo, hasher, tokens)

	if err := postSvc.InitBloomFilter(ctx); err != nil {
		logrus.Fatalf("failed to init bloom filter: %v", err)
	}

	// Start worker
	purger := workers.NewPurgeSessionsWorker(deviceRepo, cfg.PurgeInterval)
	go purger.Start(ctx)

	// prepare gin
	request.RegisterValidators()
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	rest.RegisterRoutes(route, rest.Handlers{
		Blog:     rest.NewBlogHandler(blog.NewService(blogRepo)),
		Post:     rest.NewPostHandler(postSvc),
		Comment:  rest.NewCommentHandler(comment.NewService(commentRepo, postRepo, userRepo, banRepo, bloomRepo, aggregator)),
		Reaction: rest.NewReactionHandler(reaction.NewService(reactionRepo, postRepo, commentRepo, bloomRepo)),
		User:     rest.NewUserHandler(user.NewService(userRepo, hasher)),
		Ban:      rest.NewBanHandler(ban.NewService(banRepo, userRepo, blogRepo, deviceRepo)),
		Auth:     rest.NewAuthHandler(authSvc, cfg.RefreshTTL),
		Device:   rest.NewDeviceHandler(device.NewService(deviceRepo)),
	}, rest.Guards{
		Auth:         middleware.AuthMiddleware(tokens),
		OptionalAuth: middleware.OptionalAuth(tokens),
		Session:      middleware.RefreshSession(authSvc),
		SuperAdmin:   gin.BasicAuth(gin.Accounts{cfg.SALogin: cfg.SAPassword}),
		RateLimit:    middleware.RateLimit(rateLimiter, cfg.RateLimit, cfg.RateLimitWindow),
	})

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exiting")
}
