package main

import (
	"flag"
	"fmt"
	"os"

	"workshift/app/config"
	"workshift/app/database"
	"workshift/app/models"
	"workshift/app/routes/auth"
)

// Creates an account from the command line, for bootstrapping an
// install without the register page.
func main() {
	username := flag.String("username", "", "username for the new account")
	password := flag.String("password", "", "password for the new account")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Println("Usage: add_user -username <name> -password <password>")
		os.Exit(1)
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{Username: *username, PasswordHash: hash}
	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s (%s)\n", user.Username, user.ID)
}
