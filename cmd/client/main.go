package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-chat-client/internal/app"
	"github.com/MKhiriev/go-chat-client/internal/client"
	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.UserMessage(err), err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-chat-client", cfg.Log.File)
	log.SetLevel(cfg.Log.Level)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Stringer("build", buildInfo).Msg("starting chat client")

	chatApp, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.UserMessage(err), err)
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = chatApp.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.UserMessage(err), err)
		log.Fatal().Err(err).Msg("client run error")
	}
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
