package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/RehanWaris/vbudget/internal/pkg/config"
	"github.com/RehanWaris/vbudget/internal/pkg/database"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	if err := database.RunMigrations(configs.Database, *direction); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
