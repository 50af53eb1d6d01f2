package auth_fx

import (
	"go.uber.org/fx"

	"itinera/internal/services"
)

var Module = fx.Provide(provideAuthService)

func provideAuthService() services.AuthServiceInterface {
	return services.NewAuthService()
}
