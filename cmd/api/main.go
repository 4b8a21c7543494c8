package main

import (
	_ "artisanlink/docs"
	"artisanlink/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Service Request Lifecycle API
// @version         1.0
// @description     Service request lifecycle and dispute resolution (estimates, assignments, validation, disputes) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-Id
// @description Caller identity, set by the auth gateway.

func main() {
	routes.Run()
}
