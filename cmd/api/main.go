package main

import (
	_ "turismo_agenda/docs"
	"turismo_agenda/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Tour Booking Scheduling API
// @version         1.0
// @description     Guide calendar, conflict checks, grouped orders and budgets.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
