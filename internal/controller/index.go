package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/visalhout/PagePair/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"app": util.GetAppName(),
		"defaults": gin.H{
			"dpi":     ic.app.Config.Convert.DefaultDPI,
			"quality": ic.app.Config.Convert.DefaultQuality,
		},
	})
}
