package main

import (
	"context"

	"github.com/ethanbaker/wishes/internal/api"
	"github.com/ethanbaker/wishes/internal/credentials"
	"github.com/ethanbaker/wishes/internal/notify"
	"github.com/ethanbaker/wishes/internal/settings"
	"github.com/ethanbaker/wishes/internal/sheets"
	"github.com/ethanbaker/wishes/pkg/utils"
	log "github.com/sirupsen/logrus"

	wish_module "github.com/ethanbaker/wishes/internal/api/modules/wish"
)

// Start the wishes server
func main() {
	// Load global config
	cfg := utils.NewConfigFromEnv(utils.EnvFile())
	utils.ConfigureLogging(cfg.Get("LOG_LEVEL"), cfg.GetBool("LOG_JSON"))

	s, err := settings.Load(cfg)
	if err != nil {
		log.Fatalf("[API-MAIN]: Invalid configuration: %v", err)
	}

	// Materialize credential files from the environment before reading them
	credentials.Provision(credentials.DefaultArtifacts(s.CredentialsPath, s.TokenPath), cfg.Get)

	ctx := context.Background()
	service := wish_module.NewWishService(sheets.Open(ctx, s.Target, s.CredentialsPath, s.TokenPath, s.SheetsTimeout), notify.New(s.Notification), s.Target, s.Notification)

	api.Start(s, service)
}
