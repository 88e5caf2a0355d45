package main

import (
	"context"
	"log"

	"github.com/miocluster/geocluster/config"
	"github.com/miocluster/geocluster/services"

	"github.com/labstack/echo/v5"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func main() {
	cfg := config.Load()

	appService, err := services.NewAppService(cfg)
	if err != nil {
		log.Fatalf("failed to build app service: %v", err)
	}

	app := pocketbase.New()

	app.OnBeforeServe().Add(func(e *core.ServeEvent) error {
		if err := appService.InitializeForPocketBase(app); err != nil {
			return err
		}

		appService.LoadInitial(context.Background())

		appService.SetupRoutes(e)

		e.Router.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Response().Header().Set("Access-Control-Allow-Origin", "*")
				c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
				c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

				if c.Request().Method == "OPTIONS" {
					return c.NoContent(204)
				}

				return next(c)
			}
		})

		return nil
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
