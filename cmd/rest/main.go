package main

import (
	"context"
	"log"

	"github.com/DhairyaS450/personal-website-sub000/internal/bootstrap"
	"github.com/DhairyaS450/personal-website-sub000/internal/config"
	"github.com/DhairyaS450/personal-website-sub000/internal/model"
	"github.com/DhairyaS450/personal-website-sub000/internal/server"
	"github.com/DhairyaS450/personal-website-sub000/internal/tracer"
	"github.com/DhairyaS450/personal-website-sub000/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.SiteContent{}); err != nil {
		log.Panicf("Unable to migrate site_contents: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting content event consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
