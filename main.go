package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/schoolhub/portal/cmd/app"
)

// @title           School portal API
// @version         1.0
// @description     Login and address screens backed by the school API.
//
// @BasePath  /api/v1
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
