package appcontext

import (
	"github.com/minio/minio-go/v7"
	"github.com/visalhout/PagePair/internal/config"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// S3 is nil unless object storage is enabled in the config.
	S3 *minio.Client
}
