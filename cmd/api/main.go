package main

import (
	_ "topup_store/docs"
	"topup_store/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Top-up Store API
// @version         1.0
// @description     Game top-up storefront: catalog, Tripay checkout and Digiflazz price sync backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey AdminPassword
// @in header
// @name X-Admin-Password
// @description Shared admin password, required on every /admin route except /admin/login.

func main() {
	routes.Run()
}
