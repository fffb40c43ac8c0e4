package main

import (
	"context"
	"fmt"

	"github.com/fieldpress/fieldpress/internal/config"
	"github.com/fieldpress/fieldpress/internal/content"
	"github.com/fieldpress/fieldpress/internal/forms"
	handlerhttp "github.com/fieldpress/fieldpress/internal/handler/http"
	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/internal/registry"
	"github.com/fieldpress/fieldpress/internal/server"
	"github.com/fieldpress/fieldpress/internal/service"
	"github.com/fieldpress/fieldpress/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fieldpress-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	// Registration order matters: the path resolver walks node types in
	// this order.
	reg := registry.New()
	if err := content.RegisterAll(reg); err != nil {
		log.Fatal().Err(err).Msg("error registering content types")
	}

	renderer, err := forms.NewRenderer(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating form renderer")
	}

	services := service.NewServices(storages, reg, cfg, log)
	if err := services.AuthService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error ensuring bootstrap admin account")
	}

	handler := handlerhttp.NewHandler(services, reg, renderer, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
