package route

import (
	"github.com/gin-gonic/gin"
	"github.com/visalhout/PagePair/internal/controller"
)

func V1_Convert(r *gin.RouterGroup, convertController *controller.ConvertController) {
	v1 := r.Group("/v1")
	{
		v1.POST("/convert", convertController.Convert)
		v1.GET("/batches/:batchId/zip", convertController.DownloadZip)
		v1.GET("/batches/:batchId/files/:name", convertController.ServeOutput)
		v1.GET("/batches/:batchId/files/:name/preview", convertController.ServeOutputPreview)
	}
}
