package main

import (
	"fmt"

	"github.com/MKhiriev/go-keep-vault/models"
	"github.com/spf13/cobra"
)

var (
	addEntryTitle    string
	addEntryUserName string
	addEntryURL      string
	addEntryNotes    string

	addGroupName string
	addGroupIcon int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an entry or group to the vault",
}

var addEntryCmd = &cobra.Command{
	Use:   "entry <parent-group-uuid>",
	Short: "Add an entry under the given group",
	Args:  cobra.ExactArgs(1),
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

		// The entry password never travels through flags or shell history.
		password, err := readPassword("Entry password (empty for none): ")
		if err != nil {
			return err
		}

		uuid, err := a.svc.AddEntry(ctx, args[0], models.EntryDraft{
			Title:    addEntryTitle,
			UserName: addEntryUserName,
			Password: password,
			URL:      addEntryURL,
			Notes:    addEntryNotes,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added entry %s\n", uuid)
		return nil
	},
}

var addGroupCmd = &cobra.Command{
	Use:   "group <parent-group-uuid>",
	Short: "Add a group under the given group",
	Args:  cobra.ExactArgs(1),
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

		draft := models.GroupDraft{Name: addGroupName}
		if cmd.Flags().Changed("icon") {
			icon := addGroupIcon
			draft.IconID = &icon
		}

		uuid, err := a.svc.AddGroup(ctx, args[0], draft)
		if err != nil {
			return err
		}

		fmt.Printf("Added group %s\n", uuid)
		return nil
	},
}

func init() {
	addEntryCmd.Flags().StringVar(&addEntryTitle, "title", "", "Entry title")
	addEntryCmd.Flags().StringVar(&addEntryUserName, "username", "", "Entry user name")
	addEntryCmd.Flags().StringVar(&addEntryURL, "url", "", "Entry URL")
	addEntryCmd.Flags().StringVar(&addEntryNotes, "notes", "", "Entry notes")

	addGroupCmd.Flags().StringVar(&addGroupName, "name", "", "Group name")
	addGroupCmd.Flags().IntVar(&addGroupIcon, "icon", 0, "Group icon identifier")
	_ = addGroupCmd.MarkFlagRequired("name")

	addCmd.AddCommand(addEntryCmd)
	addCmd.AddCommand(addGroupCmd)
}
