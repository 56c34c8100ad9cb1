package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"silentvoices/internal/content"
)

var journalTags []string

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Write and revisit journal reflections",
}

// journalAddCmd appends an entry to the vault. Entries are immutable.
var journalAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Save a reflection to the vault",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		a.engine.AddJournalEntry(strings.Join(args, " "), journalTags)
		a.printNotification()
		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent reflections, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		journals := a.engine.Journals()
		if len(journals) == 0 {
			fmt.Println("The vault is empty. Save a reflection with: voices journal add \"...\"")
			return nil
		}
		for _, j := range journals {
			fmt.Printf("%s  %s\n", j.CreatedAt.Format("2 Jan 15:04"), j.Content)
			if len(j.Tags) > 0 {
				fmt.Printf("          [%s]\n", strings.Join(j.Tags, ", "))
			}
		}
		return nil
	},
}

// journalPromptsCmd prints the role's reflective prompts.
var journalPromptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Show reflective prompts for your role",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		p, ok := a.engine.Profile()
		if !ok {
			return fmt.Errorf("no profile yet; run: voices init --role <role> <name>")
		}
		for _, prompt := range content.JournalPrompts(p.Role) {
			fmt.Printf("  • %s\n", prompt)
		}
		return nil
	},
}

func init() {
	journalAddCmd.Flags().StringSliceVar(&journalTags, "tags", nil, "tags (comma separated)")
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalPromptsCmd)
}
