package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-client/internal/config"
	httpHandler "github.com/MKhiriev/go-chat-client/internal/handler/http"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/server"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-chat-devserver")
	cfg, err := config.GetDevServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.LogLevel)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Stringer("build", buildInfo).Msg("starting dev server")

	services, err := service.NewServices(*cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	demoUserID := cfg.DemoUserID
	if demoUserID == "" {
		demoUserID = service.DefaultDemoUserID
	}
	token, err := services.AuthService.CreateToken(context.Background(), demoUserID)
	if err != nil {
		log.Fatal().Err(err).Msg("error minting demo token")
	}
	log.Info().
		Str("user_id", demoUserID).
		Str("token", token).
		Dur("ttl", cfg.TokenTTL).
		Msg("demo user token, export it as CHAT_TOKEN")

	handler := httpHandler.NewHandler(services, log)

	srv, err := server.NewServer(handler, services, *cfg, log)
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
