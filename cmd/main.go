package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"persona-service/config"
	"persona-service/handler"
	"persona-service/metrics"
	"persona-service/reddit"
	"persona-service/router"
	"persona-service/service"
	"persona-service/store"
	"persona-service/worker"

	"github.com/nats-io/nats.go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting Persona Service...")

	cfg := config.Load()
	metrics.Init("persona-service", cfg.Version, cfg.Environment)

	// Connect to MongoDB
	mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(context.Background())

	if err := mongoClient.Ping(context.Background(), nil); err != nil {
		log.Fatal("MongoDB ping error:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database("personadb")
	reports := store.NewReportStore(db)

	// Connect to NATS
	nc, err := nats.Connect(cfg.NATSUrl)
	if err != nil {
		log.Fatal("Failed to connect to NATS:", err)
	}
	defer nc.Close()
	log.Println("Connected to NATS")

	analyzer := service.NewAnalyzer(reddit.NewClient(cfg), reports, cfg)

	personaWorker, err := worker.NewWorker(cfg, nc, analyzer)
	if err != nil {
		log.Fatal("Failed to create worker:", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := personaWorker.Start(ctx); err != nil {
		log.Fatal("Failed to start worker:", err)
	}

	r := router.Setup(handler.NewPersonaHandler(analyzer, reports))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Persona service starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down persona service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	personaWorker.Stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Persona service stopped")
}
