package main

import (
	"context"
	"fmt"

	"silentvoices/cmd/voices/ui"
)

// runDashboard opens the interactive dashboard, the default when the
// binary runs without a subcommand.
func runDashboard() error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	if !a.engine.HasProfile() {
		fmt.Println("Welcome to SilentVoices.")
		fmt.Println("Create your profile first: voices init --role <addiction|recovery|family_friend> <name>")
		return nil
	}

	return ui.Run(context.Background(), a.engine, a.notifier, a.advisor)
}
