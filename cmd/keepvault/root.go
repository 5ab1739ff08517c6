package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-keep-vault/internal/codec"
	"github.com/MKhiriev/go-keep-vault/internal/config"
	"github.com/MKhiriev/go-keep-vault/internal/crypto"
	"github.com/MKhiriev/go-keep-vault/internal/logger"
	"github.com/MKhiriev/go-keep-vault/internal/service"
	"github.com/MKhiriev/go-keep-vault/internal/store"
	"github.com/MKhiriev/go-keep-vault/internal/utils"
	"github.com/MKhiriev/go-keep-vault/internal/workers"
	"github.com/MKhiriev/go-keep-vault/models"
	"github.com/spf13/cobra"
)

// Persistent flags; merged into the configuration as CLI overrides.
var (
	flagVault        string
	flagKeyFile      string
	flagAuditDSN     string
	flagLogFile      string
	flagConfig       string
	flagSaveInterval time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "keepvault",
	Short:        "keepvault manages a hierarchical encrypted secret store in a single file",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagVault, "vault", "", "Path to the vault container")
	rootCmd.PersistentFlags().StringVar(&flagKeyFile, "key-file", "", "Path to an optional key file")
	rootCmd.PersistentFlags().StringVar(&flagAuditDSN, "audit-dsn", "", "SQLite DSN of the local audit trail (empty disables auditing)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append the structured log to this file instead of stderr")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "JSON config file path")
	rootCmd.PersistentFlags().DurationVar(&flagSaveInterval, "save-interval", 0, "Background save interval (e.g. 30s, 1m)")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(emptyBinCmd)
	rootCmd.AddCommand(auditCmd)
}

// app aggregates the wired application: configuration, logging, the vault
// service and its background save worker. Every command builds one with
// newApp and releases it with close.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	svc     service.VaultService
	audit   store.AuditRepository
	saveJob service.SaveJob
	workers *workers.Workers
}

func flagOverrides() *config.Config {
	return &config.Config{
		Vault:        config.Vault{Path: flagVault, KeyFile: flagKeyFile},
		Storage:      config.Storage{AuditDSN: flagAuditDSN},
		Logging:      config.Logging{File: flagLogFile},
		Workers:      config.Workers{SaveInterval: flagSaveInterval},
		JSONFilePath: flagConfig,
	}
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(flagOverrides())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log := logger.NewLogger("keepvault")
	if cfg.Logging.File != "" {
		log = logger.NewFileLogger("keepvault", cfg.Logging.File)
	}

	var audit store.AuditRepository
	if cfg.Storage.AuditDSN != "" {
		audit, err = store.NewAuditRepository(ctx, cfg.Storage.AuditDSN, log)
		if err != nil {
			return nil, fmt.Errorf("open audit database: %w", err)
		}
	}

	gen := utils.NewUUIDGenerator()
	gateway := store.NewVaultGateway(codec.New(crypto.NewKeyChain()), gen, log)
	svc := service.NewVaultService(gateway, audit, gen, log)

	a := &app{
		cfg:     cfg,
		log:     log,
		svc:     svc,
		audit:   audit,
		saveJob: service.NewSaveJob(svc, log),
	}
	a.workers = workers.NewWorkers(a.saveJob)
	return a, nil
}

// unlock prompts for the master password, opens the vault and starts the
// background save worker. Mutating commands rely on the worker's shutdown
// flush: close stops it, which writes any pending changes to disk.
func (a *app) unlock(ctx context.Context) error {
	creds, err := a.credentials()
	if err != nil {
		return err
	}

	if err := a.svc.Unlock(ctx, a.cfg.Vault.Path, creds); err != nil {
		if errors.Is(err, codec.ErrAuthenticationFailed) {
			return fmt.Errorf("wrong master password or key file")
		}
		return err
	}

	a.saveJob.Start(ctx, a.cfg.Workers.SaveInterval)
	return nil
}

// close stops the background workers (flushing unsaved changes first) and
// releases the audit database.
func (a *app) close() {
	a.workers.Stop()
	if a.audit != nil {
		if err := a.audit.Close(); err != nil {
			a.log.Warn().Err(err).Msg("closing audit database")
		}
	}
}

// credentials assembles the master credentials: a masked password prompt
// plus the key file contents when one is configured.
func (a *app) credentials() (models.Credentials, error) {
	password, err := readPassword("Master password: ")
	if err != nil {
		return models.Credentials{}, err
	}

	creds := models.Credentials{Password: password}
	if a.cfg.Vault.KeyFile != "" {
		keyFile, err := os.ReadFile(a.cfg.Vault.KeyFile)
		if err != nil {
			return models.Credentials{}, fmt.Errorf("read key file: %w", err)
		}
		creds.KeyFile = keyFile
	}
	return creds, nil
}
