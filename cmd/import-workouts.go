package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/utils"
)

var importWorkoutsCmd = &cobra.Command{
	Use:   "import-workouts [file]",
	Short: "Log every workout described in a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := utils.ParseWorkoutsFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("invalid workout file: %w", err)
		}

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := newService(st)
		for i := range workouts {
			if _, err := svc.SaveDraft(ctx, &workouts[i]); err != nil {
				return fmt.Errorf("failed to import workout %s (%s): %w", workouts[i].Name, workouts[i].Date, err)
			}
		}

		fmt.Printf("✅ Imported %d workouts\n", len(workouts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importWorkoutsCmd)
}
