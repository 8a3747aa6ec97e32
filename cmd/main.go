package main

import (
	"log"
	"os"

	"github.com/taraskarpenko/recipe-app-api/config"
	"github.com/taraskarpenko/recipe-app-api/routes"
	"github.com/taraskarpenko/recipe-app-api/services"
	"github.com/taraskarpenko/recipe-app-api/utils"
)

func main() {
	config.InitDB()

	if len(os.Args) > 1 && os.Args[1] == "createsuperuser" {
		createSuperuser(os.Args[2:])
		return
	}

	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}

func createSuperuser(args []string) {
	if len(args) != 2 {
		log.Fatal("usage: createsuperuser <email> <password>")
	}

	user, err := services.CreateSuperuser(args[0], args[1])
	if err != nil {
		log.Fatalf("createsuperuser: %v", err)
	}
	log.Printf("superuser %s created", user.Email)
}
