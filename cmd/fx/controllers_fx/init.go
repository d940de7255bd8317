package controllers_fx

import (
	"go.uber.org/fx"
	"tripscout/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewPhotosController),
	fx.Provide(controllers.NewShareController))
