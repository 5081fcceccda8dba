package main

import (
	"log"
	_ "openreaders_payments/docs"
	"openreaders_payments/internal/adapter/http/routes"
	"openreaders_payments/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           OpenReaders Payments API
// @version         1.0
// @description     Razorpay order creation and payment signature verification for paid content.

// @host localhost:5000

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}
