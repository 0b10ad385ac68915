// Package main is the entry point for the storefront-service application.
//
// @title           Acai Storefront API
// @version         1.0.0
// @description     Backend API for a made-to-order acai delivery storefront.
//
//	Customers browse the menu, build session carts and place delivery orders.
//	Administrators manage order status, delivery settings and request logs.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/acaipro/storefront-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if API keys are configured.
//
// @tag.name        Catalog
// @tag.description Menu browsing operations
//
// @tag.name        Cart
// @tag.description Session cart operations
//
// @tag.name        Checkout
// @tag.description Checkout and order tracking
//
// @tag.name        Admin
// @tag.description Administrative dashboard endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/acaipro/storefront-service/docs" // swagger docs

	"github.com/acaipro/storefront-service/config"
	"github.com/acaipro/storefront-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
