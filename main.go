// Purpleshorts is a small social backend: users, posts, comments and likes
// behind a JSON HTTP API, with username/password authentication issuing JWTs.
//
// @title Purpleshorts API
// @version 1.0
// @description Social backend: users, posts, comments, likes over PostgreSQL.
// @BasePath /
// @securityDefinitions.apikey TokenAuth
// @in header
// @name token
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/user/purpleshorts-go/auth"
	"github.com/user/purpleshorts-go/comments"
	"github.com/user/purpleshorts-go/config"
	"github.com/user/purpleshorts-go/db"
	_ "github.com/user/purpleshorts-go/docs"
	"github.com/user/purpleshorts-go/likes"
	"github.com/user/purpleshorts-go/posts"
	"github.com/user/purpleshorts-go/users"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// .env is a development convenience; in production the variables are set
	// directly.
	if err := godotenv.Load(); err != nil {
		logger.Info(".env file not loaded", zap.Error(err))
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	pool, err := db.NewPool(cfg.Database)
	if err != nil {
		logger.Fatal("failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.Database, "./migrations"); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	authService := auth.NewService(auth.NewUserStore(pool), cfg.Auth, logger)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewService(users.NewStore(pool), logger)
	userHandlers := users.NewHandlers(userService)

	postService := posts.NewService(posts.NewStore(pool), logger)
	postHandlers := posts.NewHandlers(postService)

	commentService := comments.NewService(comments.NewStore(pool), logger)
	commentHandlers := comments.NewHandlers(commentService)

	likeService := likes.NewService(likes.NewStore(pool), logger)
	likeHandlers := likes.NewHandlers(likeService)

	r := chi.NewRouter()

	// Middleware must be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/sign-in", authHandlers.HandleSignUp())
		r.Post("/log-in", authHandlers.HandleLogIn())
	})

	r.Route("/users", func(r chi.Router) {
		// The by-id profile is public; everything else needs a token.
		r.Get("/{id}", userHandlers.HandleGetUserByID())

		r.Group(func(r chi.Router) {
			r.Use(auth.TokenMiddleware(cfg.Auth))
			r.Get("/me", userHandlers.HandleGetMe())
			r.Get("/", userHandlers.HandleListUsers())
		})
	})

	r.Route("/posts", func(r chi.Router) {
		r.Use(auth.TokenMiddleware(cfg.Auth))
		r.Post("/", postHandlers.HandleCreatePost())
		r.Get("/", postHandlers.HandleListPosts())
		r.Get("/user/{userId}", postHandlers.HandleListPostsByUser())
		r.Delete("/{id}", postHandlers.HandleDeletePost())
	})

	r.Route("/comments", func(r chi.Router) {
		r.Use(auth.TokenMiddleware(cfg.Auth))
		r.Post("/on/{postId}", commentHandlers.HandleCreateComment())
		r.Get("/on/{postId}", commentHandlers.HandleListComments())
		r.Put("/{id}", commentHandlers.HandleUpdateComment())
		r.Delete("/{id}", commentHandlers.HandleDeleteComment())
	})

	r.Route("/likes", func(r chi.Router) {
		r.Use(auth.TokenMiddleware(cfg.Auth))
		r.Post("/on/{postId}", likeHandlers.HandleLikePost())
		r.Get("/on/{postId}", likeHandlers.HandleListLikes())
		r.Delete("/on/{postId}", likeHandlers.HandleUnlikePost())
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
