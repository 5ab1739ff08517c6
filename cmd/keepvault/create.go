package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-keep-vault/models"
	"github.com/spf13/cobra"
)

var createRootName string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new empty vault container",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		password, err := readNewPassword()
		if err != nil {
			return err
		}

		creds := models.Credentials{Password: password}
		if a.cfg.Vault.KeyFile != "" {
			keyFile, err := os.ReadFile(a.cfg.Vault.KeyFile)
			if err != nil {
				return fmt.Errorf("read key file: %w", err)
			}
			creds.KeyFile = keyFile
		}

		if err := a.svc.Create(ctx, a.cfg.Vault.Path, createRootName, creds); err != nil {
			return err
		}

		fmt.Printf("Created vault %s\n", a.cfg.Vault.Path)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createRootName, "root-name", "Root", "Name of the root group")
}
