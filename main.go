package main

import (
	"github.com/frahmantamala/project-tracker/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cmd.Execute()
}
