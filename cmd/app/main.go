package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"itinera/cmd/fx/auth_fx"
	"itinera/cmd/fx/controllers_fx"
	"itinera/cmd/fx/converter_fx"
	"itinera/cmd/fx/db_fx"
	"itinera/cmd/fx/itinerary_fx"
	"itinera/cmd/fx/planner_fx"
	"itinera/cmd/fx/share_fx"
	"itinera/internal/api/controllers"
	"itinera/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		converter_fx.Module,
		itinerary_fx.Module,
		share_fx.Module,
		planner_fx.Module,
		auth_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	converterController *controllers.ConverterController,
	plannerController *controllers.PlannerController,
	itineraryController *controllers.ItineraryController,
	shareController *controllers.ShareController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, converterController, plannerController, itineraryController, shareController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	converterController *controllers.ConverterController,
	plannerController *controllers.PlannerController,
	itineraryController *controllers.ItineraryController,
	shareController *controllers.ShareController,
	authController *controllers.AuthController) {

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.POST("/convert", converterController.ConvertItineraryHandler)
	itinerariesGroup.POST("/validate", converterController.ValidateItineraryHandler)

	plannerGroup := r.Group("/planner")
	plannerGroup.POST("/generate", plannerController.GeneratePlanHandler)

	shareGroup := r.Group("/share")
	shareGroup.POST("", shareController.CreateShareLinkHandler)
	shareGroup.GET("/:shareId", shareController.ResolveShareLinkHandler)

	authGroup := r.Group("/auth")
	authGroup.POST("/login", authController.LoginHandler)

	adminGroup := r.Group("/admin/itineraries")
	adminGroup.Use(middleware.JWTAuthMiddleware())
	adminGroup.GET("", itineraryController.ListItinerariesHandler)
	adminGroup.GET("/:id", itineraryController.GetItineraryByIdHandler)
	adminGroup.POST("", itineraryController.CreateItineraryHandler)
	adminGroup.POST("/bulk", itineraryController.BulkCreateItinerariesHandler)
	adminGroup.PUT("/:id", itineraryController.UpdateItineraryHandler)
	adminGroup.DELETE("/:id", itineraryController.DeleteItineraryHandler)
}
