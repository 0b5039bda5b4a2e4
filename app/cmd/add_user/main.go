package main

import (
	"flag"
	"fmt"

	"fdw-appraisal/app/config"
	"fdw-appraisal/app/database"
	"fdw-appraisal/app/models"
)

func main() {
	email := flag.String("email", "", "user email")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", models.RoleFaculty, "role: faculty, hod, dean, director or admin")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email ... -password ... [-first ...] [-last ...] [-role ...]")
		return
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user, *role); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s) with role %s\n",
		user.FirstName, user.LastName, user.Email, *role)
}
