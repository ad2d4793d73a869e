package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/utils"
)

var (
	noteText   string
	noteAppend bool
)

var setNoteCmd = &cobra.Command{
	Use:   "set-note",
	Short: "Set the notes of the current workout draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := utils.LoadDraft()
		if err != nil {
			return fmt.Errorf("Failed to load draft: %w", err)
		}

		if noteAppend && draft.Notes != "" {
			draft.Notes = draft.Notes + "\n" + strings.TrimSpace(noteText)
		} else {
			draft.Notes = strings.TrimSpace(noteText)
		}

		if err := utils.SaveDraft(draft); err != nil {
			return fmt.Errorf("Failed to save draft: %w", err)
		}

		fmt.Println("✅ Note set successfully")
		return nil
	},
}

func init() {
	setNoteCmd.Flags().StringVarP(&noteText, "note", "n", "", "Note text for the workout")
	setNoteCmd.Flags().BoolVarP(&noteAppend, "append", "a", false, "Append to the existing notes instead of replacing them")
	setNoteCmd.MarkFlagRequired("note")
	rootCmd.AddCommand(setNoteCmd)
}
