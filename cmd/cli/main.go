package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Arbaznazir/shehjar-sub001/internal/models"
	"github.com/Arbaznazir/shehjar-sub001/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	addUserCmd := flag.NewFlagSet("add-user", flag.ExitOnError)
	username := addUserCmd.String("username", "", "Username for the new user")
	password := addUserCmd.String("password", "", "Password for the new user")

	addOrderCmd := flag.NewFlagSet("add-order", flag.ExitOnError)
	orderRef := addOrderCmd.String("ref", "", "Public order reference")
	customer := addOrderCmd.String("customer", "", "Customer name")
	status := addOrderCmd.String("status", "pending", "Order status")

	if len(os.Args) < 2 {
		fmt.Println("expected 'add-user' or 'add-order' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-user":
		addUserCmd.Parse(os.Args[2:])
		if *username == "" || *password == "" {
			fmt.Println("username and password are required")
			addUserCmd.PrintDefaults()
			os.Exit(1)
		}
		createUser(*username, *password)
	case "add-order":
		addOrderCmd.Parse(os.Args[2:])
		if *orderRef == "" {
			fmt.Println("ref is required")
			addOrderCmd.PrintDefaults()
			os.Exit(1)
		}
		createOrder(*orderRef, *customer, *status)
	default:
		fmt.Println("expected 'add-user' or 'add-order' subcommand")
		os.Exit(1)
	}
}

func openStore() *store.Store {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./shehjar.db"
	}

	db, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	// Ensure tables exist if running cli before server
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}
	return db
}

func createUser(username, password string) {
	db := openStore()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.CreateUser(username, string(hashedPassword)); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("User '%s' created successfully.\n", username)
}

func createOrder(ref, customer, status string) {
	db := openStore()

	order := &models.Order{
		OrderRef:     ref,
		CustomerName: customer,
		Status:       status,
	}
	if err := db.CreateOrder(order); err != nil {
		log.Fatalf("Failed to create order: %v", err)
	}

	fmt.Printf("Order '%s' created successfully.\n", ref)
}
