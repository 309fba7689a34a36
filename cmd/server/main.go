package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Arbaznazir/shehjar-sub001/internal/auth"
	"github.com/Arbaznazir/shehjar-sub001/internal/catalog"
	"github.com/Arbaznazir/shehjar-sub001/internal/config"
	"github.com/Arbaznazir/shehjar-sub001/internal/handlers"
	"github.com/Arbaznazir/shehjar-sub001/internal/menu"
	"github.com/Arbaznazir/shehjar-sub001/internal/store"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

func main() {
	// Configure slog to output DEBUG level messages
	// This should be done as early as possible in main
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	// Using TextHandler for console readability; for production JSONHandler might be preferred.
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Init DB
	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	// Run Migrations
	if err := db.Migrate("migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 3. Session Setup
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure // Configurable for production
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	// 4. Init Templates
	templates := handlers.NewTemplateCache()
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 5. Setup Handlers
	// The menu editing session is seeded from the static catalog and lives
	// only in memory; restarting the server resets it.
	menuSession := menu.NewSession(catalog.Flatten())

	adminHandler := &handlers.AdminHandler{
		Store:        db,
		Auth:         &auth.StoreAuthenticator{Users: db},
		SessionStore: sessionStore,
		Templates:    templates,
		Menu:         menuSession,
	}
	publicHandler := &handlers.PublicHandler{
		Templates: templates,
	}
	apiHandler := &handlers.APIHandler{
		Orders: db,
	}

	mux := http.NewServeMux()

	// Static Files
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate Limiter for login attempts
	rateLimiter := handlers.NewRateLimiter(10 * time.Second)

	// Public Routes
	mux.HandleFunc("/", publicHandler.Index)
	mux.HandleFunc("/menu", publicHandler.Menu)
	mux.HandleFunc("/gallery", publicHandler.Gallery)

	mux.HandleFunc("/login", adminHandler.LoginGet)
	mux.HandleFunc("POST /login", rateLimiter.Middleware(adminHandler.LoginPost))
	mux.HandleFunc("/logout", adminHandler.Logout)

	// Protected Routes
	mux.HandleFunc("/admin", adminHandler.AuthMiddleware(adminHandler.Dashboard))
	mux.HandleFunc("/admin/orders", adminHandler.AuthMiddleware(adminHandler.ListOrders))
	mux.HandleFunc("POST /admin/orders/update", adminHandler.AuthMiddleware(adminHandler.UpdateOrder))

	mux.HandleFunc("/admin/menu", adminHandler.AuthMiddleware(adminHandler.ListMenu))
	mux.HandleFunc("/admin/menu/new", adminHandler.AuthMiddleware(adminHandler.NewItemForm))
	mux.HandleFunc("/admin/menu/edit", adminHandler.AuthMiddleware(adminHandler.EditItemForm))
	mux.HandleFunc("POST /admin/menu/save", adminHandler.AuthMiddleware(adminHandler.SubmitItem))
	mux.HandleFunc("POST /admin/menu/cancel", adminHandler.AuthMiddleware(adminHandler.CancelEdit))
	mux.HandleFunc("/admin/menu/delete", adminHandler.AuthMiddleware(adminHandler.DeleteItemConfirm))
	mux.HandleFunc("POST /admin/menu/delete", adminHandler.AuthMiddleware(adminHandler.DeleteItem))

	// 6. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure), // Configurable for production
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// JSON API lives on its own mux outside the CSRF wrapper; clients send
	// no CSRF token with PUT requests.
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("PUT /api/orders/{orderId}", apiHandler.UpdateOrder)

	root := http.NewServeMux()
	root.Handle("/api/", apiMux)
	root.Handle("/", CSRF(mux))

	// Chain: Logger -> Security Headers -> Legacy Redirects -> Router
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			handlers.LegacyRedirectMiddleware(root),
		),
	)

	// 7. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	// Create a channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Goroutine to start the server
	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
