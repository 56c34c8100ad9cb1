package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"silentvoices/internal/content"
	"silentvoices/internal/milestone"
	"silentvoices/internal/types"
)

var initRole string

// initCmd seeds a new profile (onboarding).
var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create your profile and start your journey",
	Long: `Seeds a new profile with role-dependent defaults: reasons to stay
sober, spend/hours baselines, a green status, and a fresh routine
checklist.

Roles:
  addiction      - I am struggling with addiction
  recovery       - I am in recovery
  family_friend  - I support someone on their journey`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := types.ParseRole(initRole)
		if err != nil {
			return err
		}
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if a.engine.HasProfile() {
			return fmt.Errorf("a profile already exists; SilentVoices keeps one journey per installation")
		}

		name := strings.Join(args, " ")
		p := a.engine.CreateProfile(role, name)

		// First run: write a starter config so there is a file to edit.
		cfgPath := resolveConfigPath()
		if _, statErr := os.Stat(cfgPath); os.IsNotExist(statErr) {
			if saveErr := a.cfg.Save(cfgPath); saveErr != nil {
				logger.Warn("failed to write starter config", zap.Error(saveErr))
			}
		}

		fmt.Printf("Welcome, %s (%s).\n", p.Name, content.RoleLabel(p.Role))
		fmt.Println("\nYour reasons to stay on this path:")
		for _, r := range p.ReasonsToStaySober {
			fmt.Printf("  • %s\n", r)
		}
		fmt.Println("\nLog your first check-in with: voices checkin --mood 7")
		return nil
	},
}

// profileCmd shows the current profile and derived fields.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile, scores, and progress",
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

		fmt.Printf("%s — %s\n", p.Name, content.RoleLabel(p.Role))
		fmt.Printf("Joined:           %s\n", p.JoinDate.Format("2 Jan 2006"))
		fmt.Printf("Status:           %s\n", p.CurrentStatus)
		fmt.Printf("Risk level:       %s (heuristic signal, not a diagnosis)\n", p.RiskLevel)
		fmt.Printf("Resilience score: %d/100\n", p.ResilienceScore)
		if p.Role.AccruesSoberDays() {
			fmt.Printf("Sober days:       %d\n", p.TotalSoberDays)
		}
		fmt.Printf("Check-in days:    %d\n", p.TotalCheckInDays)
		if p.IsLighthouse {
			fmt.Println("Lighthouse:       eligible — you can mentor a peer 🗼")
		} else if next, ok := milestone.Next(p.TotalSoberDays); ok {
			fmt.Printf("Next milestone:   day %d — %s\n", next.Day, next.Title)
		}
		a.printNotification()
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initRole, "role", "", "your role: addiction, recovery, or family_friend (required)")
	_ = initCmd.MarkFlagRequired("role")
}
