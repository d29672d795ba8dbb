package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	httpadapter "resume-exporter/internal/adapter/http"
	repo "resume-exporter/internal/adapter/repository"
	"resume-exporter/internal/infrastructure/migration"
	"resume-exporter/internal/usecase"
	infra "resume-exporter/pkg/infrastructure"
)

func main() {
	ctx := context.Background()

	pool, err := infra.NewExportsPool(ctx)
	if err != nil {
		log.Printf("warning: exports DB not available: %v", err)
	} else if err := migration.RunMigrations(ctx, pool); err != nil {
		log.Printf("warning: migrations failed: %v", err)
	}

	tplDir := os.Getenv("TEMPLATES_DIR")
	if tplDir == "" {
		tplDir = "templates"
	}

	renderer := infra.NewChromedpRenderer()
	exporter := &usecase.Exporter{
		Resolver:   usecase.NewFilenameResolver(nil),
		Preview:    usecase.NewPreviewRenderer(tplDir),
		Sink:       infra.NewFileSink(os.Getenv("EXPORT_DATA_DIR")),
		Rasterizer: renderer,
		Printer:    renderer,
		Titles:     usecase.NewMemoryTitleStore("Resume"),
	}

	var jobs *httpadapter.ExportJobs
	if pool != nil {
		exportsRepo := repo.NewExportsRepo(pool)
		jobs = &httpadapter.ExportJobs{Save: exportsRepo.Save, GetByID: exportsRepo.GetByID}
	}

	app := fiber.New()
	h := httpadapter.NewHandler(exporter, jobs)
	app.Post("/exports", h.StartExport)
	app.Get("/exports/:id", h.GetExport)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
