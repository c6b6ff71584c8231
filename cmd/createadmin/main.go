package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"supportdesk/internal/infrastructure/firebase"
	"supportdesk/internal/usecase"
	"supportdesk/pkg/config"
	"supportdesk/pkg/errors"
)

// Bootstraps a dashboard operator account: creates the user in Firebase Auth
// and tags it with the admin custom claim.
func main() {
	email := flag.String("email", "admin@example.com", "admin email address")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Admin", "display name")
	flag.Parse()

	if *password == "" {
		log.Fatal("a password is required: -password <value>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)
	authUseCase := usecase.NewAuthUseCase(firebaseAuthClient)

	uid, err := authUseCase.CreateAdmin(ctx, *email, *password, *name)
	if err != nil {
		explainCreateError(err)
		os.Exit(1)
	}

	fmt.Println("Admin user created successfully!")
	fmt.Printf("User ID: %s\n", uid)
	fmt.Printf("Email:   %s\n", *email)
	fmt.Println("\nYou can now use these credentials to log in to the dashboard.")
}

func explainCreateError(err error) {
	log.Printf("Error creating admin user: %v", err)

	switch {
	case errors.Is(err, errors.CodeEmailAlreadyInUse):
		fmt.Println("This email is already in use. Please use a different email.")
	case errors.Is(err, errors.CodeInvalidEmail):
		fmt.Println("The email address is not valid.")
	case errors.Is(err, errors.CodeOperationNotAllowed):
		fmt.Println("Email/password accounts are not enabled.")
	case errors.Is(err, errors.CodeWeakPassword):
		fmt.Println("The password is too weak. Please use a stronger password.")
	default:
		fmt.Println("An unknown error occurred.")
	}
}
