package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rmGroup     bool
	rmPermanent bool
)

var rmCmd = &cobra.Command{
	Use:   "rm <uuid>",
	Short: "Delete an entry or group",
	Long: `Delete an entry (or, with --group, a group) by UUID. By default the
node is moved to the recycle bin; --permanent removes it outright. Nodes
already inside the recycle bin can only be removed with --permanent or by
emptying the bin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		uuid := args[0]

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.unlock(ctx); err != nil {
			return err
		}

		switch {
		case rmGroup && rmPermanent:
			err = a.svc.DeleteGroupPermanently(ctx, uuid)
		case rmGroup:
			err = a.svc.DeleteGroup(ctx, uuid)
		case rmPermanent:
			err = a.svc.DeleteEntryPermanently(ctx, uuid)
		default:
			err = a.svc.DeleteEntry(ctx, uuid)
		}
		if err != nil {
			return err
		}

		if rmPermanent {
			fmt.Printf("Permanently deleted %s\n", uuid)
		} else {
			fmt.Printf("Moved %s to the recycle bin\n", uuid)
		}
		return nil
	},
}

var emptyBinCmd = &cobra.Command{
	Use:   "empty-bin",
	Short: "Permanently delete everything in the recycle bin",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.unlock(ctx); err != nil {
			return err
		}

		if err := a.svc.EmptyRecycleBin(ctx); err != nil {
			return err
		}

		fmt.Println("Recycle bin emptied.")
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVar(&rmGroup, "group", false, "The UUID names a group")
	rmCmd.Flags().BoolVar(&rmPermanent, "permanent", false, "Skip the recycle bin")
}
