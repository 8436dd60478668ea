package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/nightshift-tools/nightshift/internal/commands"
)

func main() {
	_ = godotenv.Load()

	if err := commands.NewReportCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
