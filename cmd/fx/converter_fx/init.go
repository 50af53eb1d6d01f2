package converter_fx

import (
	"go.uber.org/fx"

	"itinera/internal/services"
)

var Module = fx.Provide(provideConverterService)

func provideConverterService() services.ConverterServiceInterface {
	return services.NewConverterService()
}
