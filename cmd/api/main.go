package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"filevault/internal/blob"
	"filevault/internal/config"
	"filevault/internal/database"
	"filevault/internal/middleware"
	"filevault/internal/modules/app"
	"filevault/internal/modules/auth"
	"filevault/internal/modules/files"
	"filevault/internal/modules/users"
	"filevault/internal/repository"
	"filevault/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	sessions := session.NewRedisStore(cfg.RedisAddr, cfg.RedisDB)
	defer sessions.Close()

	userRepo := repository.NewUserRepository(db)
	fileRepo := repository.NewFileRepository(db)
	blobs := blob.NewStore(cfg.FolderPath)

	authService := auth.NewService(userRepo, sessions, cfg.SessionTTL)
	authHandler := auth.NewHandler(authService)

	usersService := users.NewService(userRepo)
	usersHandler := users.NewHandler(usersService)

	filesService := files.NewService(fileRepo, blobs)
	filesHandler := files.NewHandler(filesService)

	appHandler := app.NewHandler(db, sessions, userRepo, fileRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	root := r.Group("/")
	{
		// public
		appHandler.RegisterRoutes(root)
		usersHandler.RegisterRoutes(root)
		authHandler.RegisterRoutes(root)

		// content reads resolve the caller when a token is present but
		// never require one
		content := root.Group("/")
		content.Use(middleware.OptionalTokenAuth(authService))
		filesHandler.RegisterContentRoute(content)

		// protected
		protected := root.Group("/")
		protected.Use(middleware.TokenAuth(authService))
		filesHandler.RegisterRoutes(protected)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
