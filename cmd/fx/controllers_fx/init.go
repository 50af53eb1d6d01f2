package controllers_fx

import (
	"go.uber.org/fx"

	"itinera/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewConverterController),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewShareController),
	fx.Provide(controllers.NewAuthController))
