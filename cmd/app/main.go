package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripscout/cmd/fx/controllers_fx"
	"tripscout/cmd/fx/db_fx"
	"tripscout/cmd/fx/places_fx"
	"tripscout/cmd/fx/planner_fx"
	"tripscout/cmd/fx/share_fx"
	"tripscout/internal/api/controllers"
	"tripscout/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		planner_fx.Module,
		places_fx.Module,
		share_fx.Module,
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
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
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
	plannerController *controllers.PlannerController,
	photosController *controllers.PhotosController,
	shareController *controllers.ShareController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, plannerController, photosController, shareController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	photosController *controllers.PhotosController,
	shareController *controllers.ShareController) {

	plansGroup := r.Group("/plans")
	plansGroup.POST("/generate", plannerController.GeneratePlanHandler)
	plansGroup.POST("/stream", plannerController.StreamPlanHandler)
	plansGroup.POST("/more-attractions", plannerController.MoreAttractionsHandler)
	plansGroup.POST("/more-hidden-gems", plannerController.MoreHiddenGemsHandler)
	plansGroup.POST("/more-activities", plannerController.MoreActivitiesHandler)
	plansGroup.POST("/shared", shareController.SavePlanHandler)
	plansGroup.GET("/shared/:code", shareController.GetSharedPlanHandler)

	photosGroup := r.Group("/photos")
	photosGroup.GET("", photosController.GetPhotosHandler)
}
