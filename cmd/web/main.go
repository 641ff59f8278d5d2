// @title           LMS API
// @version         1.0
// @description     Backend for the learning platform: courses, lessons,
// @description     subscriptions and payments.
// @host            localhost:8000
// @BasePath        /api/v1

package main

import (
	"lms_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	app.Run()
}
