package pkg

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/comparison"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/config"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/dsn"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/handler"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/middleware"
	appredis "github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/redis"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/repository"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/search"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/storage"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

// NewApp builds the whole application from config: database, cache,
// icon storage, engines, handlers.
func NewApp(cfg *config.Config) (*Application, error) {
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		return nil, fmt.Errorf("database DSN is empty, check your .env file")
	}
	repo, err := repository.New(dsnStr)
	if err != nil {
		return nil, fmt.Errorf("init repository: %w", err)
	}

	// redis cache is optional: without it the popular list is read
	// from the database every time
	var cache search.PopularCache
	if cfg.Redis.Host != "" {
		redisClient, err := appredis.New(context.Background(), cfg.Redis)
		if err != nil {
			logrus.Warn("redis unavailable, popular-services cache disabled: ", err)
		} else {
			cache = redisClient
		}
	}

	// icon storage is optional too
	var minioClient *storage.MinIOClient
	if cfg.Minio.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(
			cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey,
			cfg.Minio.Bucket, cfg.Minio.UseSSL)
		if err != nil {
			logrus.Warn("minio unavailable, icon uploads disabled: ", err)
			minioClient = nil
		}
	}

	matcher := search.NewMatcher(repo)
	suggester := search.NewSuggester(repo, cache, search.DefaultSynonyms())
	builder := comparison.NewBuilder(repo)
	pdfRenderer := comparison.NewPDFRenderer(
		comparison.NewChromeBackend(cfg.Export.ChromePath),
		cfg.Export.PDFTimeout)

	h := handler.NewHandler(repo, minioClient, matcher, suggester, builder, pdfRenderer)

	router := gin.Default()
	router.Use(middleware.WithRequestID())
	router.Use(middleware.WithRequestLogging())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Disposition", "X-Request-ID"},
	}))

	return &Application{
		Config:  cfg,
		Router:  router,
		Handler: h,
	}, nil
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	a.Handler.RegisterRoutes(a.Router)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
