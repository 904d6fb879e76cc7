package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./scripts/make-admin <email>")
		os.Exit(1)
	}
	email := os.Args[1]

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/tulisaja.db"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	result, err := db.Exec("UPDATE users SET is_admin = TRUE WHERE email = ?", email)
	if err != nil {
		log.Fatalf("Failed to update user: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Fatalf("Failed to get rows affected: %v", err)
	}

	if rowsAffected == 0 {
		fmt.Printf("No user found with email: %s\n", email)
		fmt.Println("The user needs to sign up first.")
	} else {
		fmt.Printf("Successfully made %s an admin!\n", email)
	}
}
