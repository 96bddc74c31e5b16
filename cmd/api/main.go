// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	// Internal packages
	"github.com/anisapp/anis-server/internal/activities"
	"github.com/anisapp/anis-server/internal/chat"
	"github.com/anisapp/anis-server/internal/common/latency"
	"github.com/anisapp/anis-server/internal/common/utils"
	"github.com/anisapp/anis-server/internal/config"
	"github.com/anisapp/anis-server/internal/identity"
	"github.com/anisapp/anis-server/internal/requests"
	"github.com/anisapp/anis-server/internal/seed"
	"github.com/anisapp/anis-server/internal/users"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🏟️  Starting ANIS Sports Activity API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Printf("✅ Configuration loaded (env=%s, simulated latency=%s)", cfg.Environment, cfg.SimulatedLatency)

	// 3. Initialize in-memory stores
	// Everything lives in process memory; nothing survives a restart.
	log.Println("\n🗄️  Step 3: Initializing in-memory stores...")
	usersRepo := users.NewMemoryRepository()
	activitiesRepo := activities.NewMemoryRepository()
	requestsRepo := requests.NewMemoryRepository()
	chatsRepo := chat.NewMemoryRepository()
	simulator := latency.NewSimulator(cfg.SimulatedLatency)
	log.Println("✅ Stores initialized")

	// 4. Initialize Users module
	log.Println("\n👤 Step 4: Initializing Users module...")
	usersService := users.NewService(usersRepo, simulator)
	usersHandler := users.NewHandler(usersService)
	log.Println("✅ Users module initialized")

	// 5. Initialize Chat module
	log.Println("\n💬 Step 5: Initializing Chat module...")
	chatService := chat.NewService(chatsRepo, usersService, simulator)
	chatHandler := chat.NewHandler(chatService)
	log.Println("✅ Chat module initialized")

	// 6. Initialize Activities module
	log.Println("\n🏃 Step 6: Initializing Activities module...")
	activitiesService := activities.NewService(activitiesRepo, usersService, chatService, simulator)
	activitiesHandler := activities.NewHandler(activitiesService)
	log.Println("✅ Activities module initialized")

	// 7. Initialize Join Requests module
	log.Println("\n📨 Step 7: Initializing Join Requests module...")
	requestsService := requests.NewService(requestsRepo, activitiesService, usersService, chatService, simulator)
	requestsHandler := requests.NewHandler(requestsService)
	log.Println("✅ Join Requests module initialized")

	// 8. Seed demo data
	if cfg.SeedDemoData {
		log.Println("\n🌱 Step 8: Seeding demo data...")
		stores := seed.Stores{
			Users:      usersRepo,
			Activities: activitiesRepo,
			Requests:   requestsRepo,
			Chats:      chatsRepo,
		}
		if err := seed.Load(context.Background(), stores); err != nil {
			log.Fatal("❌ Failed to seed demo data:", err)
		}
		log.Println("✅ Demo data seeded")
	} else {
		log.Println("\n🌱 Step 8: Demo data seeding disabled")
	}

	// 9. Set up routes
	log.Println("\n🛣️  Step 9: Setting up routes...")
	router := mux.NewRouter()
	identityMiddleware := identity.NewMiddleware()

	users.RegisterRoutes(router, usersHandler, identityMiddleware)
	activities.RegisterRoutes(router, activitiesHandler, identityMiddleware)
	requests.RegisterRoutes(router, requestsHandler, identityMiddleware)
	chat.RegisterRoutes(router, chatHandler, identityMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	log.Println("✅ Routes registered")

	// 10. Start the server
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-User-ID"},
	}).Handler(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Printf("\n🚀 Server listening on %s", cfg.BaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server failed:", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Forced shutdown:", err)
	}
	log.Println("✅ Server stopped")
}
