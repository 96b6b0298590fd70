package main

import (
	_ "github.com/SUmit-kush123/bookin.com-sub000/docs"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Booking Lifecycle API
// @version         1.0
// @description     Booking lifecycle and live tracking (catalog, bookings, payments, vouchers) backed by DynamoDB.
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
