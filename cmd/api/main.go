package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/minio/minio-go/v7"
	appcontext "github.com/visalhout/PagePair/internal/app_context"
	"github.com/visalhout/PagePair/internal/config"
	"github.com/visalhout/PagePair/internal/controller"
	"github.com/visalhout/PagePair/internal/env"
	filestorage "github.com/visalhout/PagePair/internal/file_storage"
	"github.com/visalhout/PagePair/internal/middleware"
	ratelimiter "github.com/visalhout/PagePair/internal/rate_limiter"
	"github.com/visalhout/PagePair/internal/route"
	"github.com/visalhout/PagePair/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	var s3 *minio.Client
	if cfg.Minio.Enabled {
		var err error
		s3, err = filestorage.NewMinioClient(&cfg.Minio)
		if err != nil {
			logger.Error("Error connecting to minio")
			logger.Panic(err)
		}
		logger.Info("Object storage connected \n")
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
		if err := v.RegisterValidation("imageFormat", util.ImageFormat); err != nil {
			return
		}
		if err := v.RegisterValidation("alignMode", util.AlignMode); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	app := appcontext.Application{
		Config: &cfg,
		Logger: logger,
		S3:     s3,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.ENV == "production" {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	route.V1_Convert(rApi, _controller.Convert)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
