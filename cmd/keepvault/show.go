package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	showCopy   bool
	showReveal string
)

var showCmd = &cobra.Command{
	Use:   "show <entry-uuid>",
	Short: "Show one entry",
	Long: `Show one entry by UUID. The password is masked in the output;
use --copy to place it on the clipboard, or --reveal to print a single
concealed field in plain text.`,
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

		if showReveal != "" {
			plain, err := a.svc.RevealField(uuid, showReveal)
			if err != nil {
				return err
			}
			fmt.Println(plain)
			return nil
		}

		entry, err := a.svc.GetEntry(uuid)
		if err != nil {
			return err
		}

		fmt.Printf("Title:    %s\n", entry.Title)
		fmt.Printf("Username: %s\n", entry.UserName)
		if entry.Password != "" {
			fmt.Printf("Password: ********\n")
		}
		if entry.URL != "" {
			fmt.Printf("URL:      %s\n", entry.URL)
		}
		if entry.Notes != "" {
			fmt.Printf("Notes:    %s\n", entry.Notes)
		}
		if entry.OTP != "" {
			fmt.Printf("OTP:      configured\n")
		}
		for _, f := range entry.CustomFields {
			if f.Concealed {
				fmt.Printf("%s: ******** (use --reveal %q)\n", f.Key, f.Key)
				continue
			}
			fmt.Printf("%s: %s\n", f.Key, f.Value)
		}
		for _, att := range entry.Attachments {
			fmt.Printf("Attachment: %s (%d bytes)\n", att.Filename, len(att.Data))
		}

		if showCopy {
			if err := clipboard.WriteAll(entry.Password); err != nil {
				return fmt.Errorf("copy password to clipboard: %w", err)
			}
			fmt.Println("Password copied to clipboard.")
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "Copy the password to the clipboard")
	showCmd.Flags().StringVar(&showReveal, "reveal", "", "Print the named concealed field in plain text")
}
