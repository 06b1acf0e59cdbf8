package main

import (
	"context"
	"errors"
	"log"

	"github.com/fatih/color"

	"github.com/DhairyaS450/personal-website-sub000/internal/config"
	"github.com/DhairyaS450/personal-website-sub000/internal/model"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/apperror"
	"github.com/DhairyaS450/personal-website-sub000/internal/repository/implementation"
	"github.com/DhairyaS450/personal-website-sub000/pkg/content"
	"github.com/DhairyaS450/personal-website-sub000/pkg/database"
)

// Seeds the site document. Idempotent: an existing document is left alone,
// rerunning never overwrites edits made through the API.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.SiteContent{}); err != nil {
		log.Panicf("Unable to migrate site_contents: %v", err)
	}

	repo := implementation.NewContentRepository(gormDB)
	ctx := context.Background()

	_, updatedAt, err := repo.Fetch(ctx)
	if err == nil {
		color.Yellow("⚠️  Site content already seeded (last updated %s), nothing to do", updatedAt.Format("2006-01-02 15:04:05"))
		return
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		log.Panicf("Unable to check existing content: %v", err)
	}

	if _, err := repo.Replace(ctx, content.DefaultContent()); err != nil {
		log.Panicf("Unable to seed content: %v", err)
	}
	color.Green("✅ Seeded default site content")
}
