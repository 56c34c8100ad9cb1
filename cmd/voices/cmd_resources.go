package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"silentvoices/internal/content"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Browse the support resource library",
}

var resourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the library articles by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		var category content.ResourceCategory
		for _, r := range content.ResourceLibrary {
			if r.Category != category {
				category = r.Category
				fmt.Printf("\n%s\n", category)
			}
			lock := " "
			if r.IsPremium {
				lock = "🔒"
			}
			fmt.Printf("  %s %s %s (%s)\n      %s\n", lock, r.Icon, r.Title, r.ID, r.Description)
		}
		return nil
	},
}

// resourcesShowCmd prints one article. Premium articles are listed but
// their body stays gated.
var resourcesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Read one library article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, ok := content.FindResource(args[0])
		if !ok {
			return fmt.Errorf("unknown resource: %s", args[0])
		}
		fmt.Printf("%s %s\n%s\n\n", r.Icon, r.Title, r.Description)
		if r.IsPremium {
			fmt.Println("🔒 This is a premium article.")
			return nil
		}
		fmt.Println(r.Content)
		return nil
	},
}

// contactsCmd prints the recovery phone book.
var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Show the recovery phone book",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Recovery Phone Book")
		for _, c := range content.ResourceContacts {
			fmt.Printf("  %-20s %-18s %-16s %s\n", c.Name, c.Role, c.Phone, c.Region)
		}
		return nil
	},
}

func init() {
	resourcesCmd.AddCommand(resourcesListCmd)
	resourcesCmd.AddCommand(resourcesShowCmd)
}
