package main

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-keep-vault/models"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the vault tree",
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

		root, err := a.svc.Render()
		if err != nil {
			return err
		}

		printGroup(root, 0)
		return nil
	},
}

func printGroup(g models.DisplayGroup, depth int) {
	indent := strings.Repeat("  ", depth)
	label := g.Name
	if g.IsRecycleBin {
		label += " (recycle bin)"
	}
	fmt.Printf("%s%s/  [%s]\n", indent, label, g.UUID)

	for _, e := range g.Entries {
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%s  %s  [%s]\n", indent, title, e.UUID)
	}
	for _, sub := range g.Groups {
		printGroup(sub, depth+1)
	}
}
