package main

import (
	"log"

	"github.com/joho/godotenv"

	"newskill/internal/app"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatalf("newskill: %v", err)
	}
}
