package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"silentvoices/internal/engine"
	"silentvoices/internal/types"
)

var (
	checkinMood     int
	checkinNotes    string
	checkinCravings string
	checkinTriggers []string
	checkinFocus    string
	checkinBoundary bool
	checkinQuality  string
	checkinSelfCare bool
)

// checkinCmd records today's check-in and reports the updated scores.
var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Log a daily check-in",
	Long: `Records an immutable check-in (mood, notes, cravings, triggers) and
updates the derived profile fields: sober days, resilience score,
risk level, and milestone progress.

Supporter-role extras (--focus, --boundary, --quality, --selfcare)
track where your energy went rather than sobriety.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkinMood < 1 || checkinMood > 10 {
			return fmt.Errorf("mood must be between 1 and 10")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if !a.engine.HasProfile() {
			return fmt.Errorf("no profile yet; run: voices init --role <role> <name>")
		}

		in := engine.CheckInInput{
			Mood:     checkinMood,
			Notes:    checkinNotes,
			Cravings: types.Craving(checkinCravings),
			Triggers: checkinTriggers,
		}
		if checkinFocus != "" {
			in.FocusArea = types.FocusArea(checkinFocus)
		}
		if cmd.Flags().Changed("boundary") {
			in.BoundaryMaintained = &checkinBoundary
		}
		if checkinQuality != "" {
			in.InteractionQuality = types.InteractionQuality(checkinQuality)
		}
		if cmd.Flags().Changed("selfcare") {
			in.SelfCareCompleted = &checkinSelfCare
		}

		p, reached := a.engine.RecordCheckIn(in)

		fmt.Printf("Check-in logged. Resilience %d/100, risk %s.\n", p.ResilienceScore, p.RiskLevel)
		if p.Role.AccruesSoberDays() {
			fmt.Printf("That's %d sober days.\n", p.TotalSoberDays)
		}
		if reached != nil {
			fmt.Printf("\n%s  Day %d — %s\n", reached.Icon, reached.Day, reached.Title)
			fmt.Printf("%s\n", reached.Message)
			fmt.Printf("%s\n", reached.Reward)
		}
		a.printNotification()
		return nil
	},
}

func init() {
	checkinCmd.Flags().IntVar(&checkinMood, "mood", 0, "mood on a 1-10 scale (required)")
	checkinCmd.Flags().StringVar(&checkinNotes, "notes", "", "free-text notes")
	checkinCmd.Flags().StringVar(&checkinCravings, "cravings", "", "craving level: none, mild, or strong")
	checkinCmd.Flags().StringSliceVar(&checkinTriggers, "triggers", nil, "trigger tags (comma separated)")
	checkinCmd.Flags().StringVar(&checkinFocus, "focus", "", "supporter focus: mostly_me, half_half, or mostly_them")
	checkinCmd.Flags().BoolVar(&checkinBoundary, "boundary", false, "boundary maintained today")
	checkinCmd.Flags().StringVar(&checkinQuality, "quality", "", "interaction quality: positive, neutral, tense, or none")
	checkinCmd.Flags().BoolVar(&checkinSelfCare, "selfcare", false, "self-care completed today")
	_ = checkinCmd.MarkFlagRequired("mood")
}
