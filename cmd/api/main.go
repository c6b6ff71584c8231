package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"supportdesk/internal/adapter/api"
	"supportdesk/internal/adapter/api/handler"
	apimiddleware "supportdesk/internal/adapter/api/middleware"
	"supportdesk/internal/adapter/api/router"
	"supportdesk/internal/adapter/repository"
	"supportdesk/internal/infrastructure/firebase"
	"supportdesk/internal/infrastructure/websocket"
	"supportdesk/internal/observability"
	"supportdesk/internal/usecase"
	"supportdesk/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from environment variable (production) or file path
	// (local development).
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
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

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	presenceRepo := repository.NewFirestorePresenceRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(firebaseAuthClient)
	conversationUseCase := usecase.NewConversationUseCase(presenceRepo, messageRepo)
	statsUseCase := usecase.NewStatsUseCase(presenceRepo, messageRepo, notificationRepo, cfg.RecentMessageLimit, cfg.BadgeLimit)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, cfg.BadgeLimit)

	wsManager := websocket.NewManager()
	feedUseCase := usecase.NewFeedUseCase(conversationUseCase, presenceRepo, messageRepo, wsManager)
	wsManager.OnSelect(feedUseCase.HandleSelect)
	wsManager.Start(ctx)

	if err := feedUseCase.Start(ctx); err != nil {
		log.Fatalf("Failed to start live feed: %v", err)
	}

	handler.Setup(authUseCase, conversationUseCase, statsUseCase, notificationUseCase)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(observability.HTTPMetricsMiddleware())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	wsHandler := handler.NewWebSocketHandler(wsManager, firebaseAuthClient)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
