package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var auditLimit uint64

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "List recorded vault operations, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if a.audit == nil {
			return fmt.Errorf("auditing is disabled: set an audit DSN via --audit-dsn or STORAGE_AUDIT_DSN")
		}

		events, err := a.audit.ListEvents(ctx, auditLimit)
		if err != nil {
			return err
		}

		for _, e := range events {
			line := fmt.Sprintf("%s  %-20s", e.At.Format(time.RFC3339), e.Op)
			if e.NodeUUID != "" {
				line += fmt.Sprintf("  %s %s", e.Kind, e.NodeUUID)
			}
			if e.Detail != "" {
				line += "  " + e.Detail
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().Uint64Var(&auditLimit, "limit", 50, "Maximum number of events to print (0 for all)")
}
