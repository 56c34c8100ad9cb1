package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"silentvoices/internal/content"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Work through your guided lesson path",
}

var lessonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the lessons on your path",
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

		lessons := content.LessonsForRole(p.Role)
		if len(lessons) == 0 {
			fmt.Println("Your role learns through the resource library; no guided path yet.")
			return nil
		}
		for _, l := range lessons {
			mark := " "
			if p.HasCompletedLesson(l.ID) {
				mark = "✓"
			}
			fmt.Printf("  [%s] day %d  %s  (%s)\n", mark, l.Day, l.Title, l.ID)
		}
		return nil
	},
}

var lessonShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Read one lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, ok := content.FindLesson(args[0])
		if !ok {
			return fmt.Errorf("unknown lesson: %s", args[0])
		}
		fmt.Printf("Day %d — %s\n\n%s\n\nToday's action:\n%s\n", l.Day, l.Title, l.Message, l.Action)
		return nil
	},
}

// lessonCompleteCmd marks a lesson done; repeating it is a no-op.
var lessonCompleteCmd = &cobra.Command{
	Use:   "complete [id]",
	Short: "Mark a lesson as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := content.FindLesson(args[0]); !ok {
			return fmt.Errorf("unknown lesson: %s", args[0])
		}
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		a.engine.CompleteLesson(args[0])
		a.printNotification()
		return nil
	},
}

func init() {
	lessonCmd.AddCommand(lessonListCmd)
	lessonCmd.AddCommand(lessonShowCmd)
	lessonCmd.AddCommand(lessonCompleteCmd)
}
