package controller

import (
	appcontext "github.com/visalhout/PagePair/internal/app_context"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index   *IndexController
	Convert *ConvertController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:   &IndexController{baseController: bc},
		Convert: &ConvertController{baseController: bc},
	}
}
