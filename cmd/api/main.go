package main

import (
	"log"

	"github.com/joho/godotenv"

	"investingmenu/cmd"
	"investingmenu/internal"
)

func main() {
	// missing .env is fine in deployed environments
	_ = godotenv.Load()

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	config, err := internal.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(config.Port)
	if err != nil {
		log.Fatal(err)
	}
}
