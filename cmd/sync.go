package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/config"
	"github.com/misterclayt0n/fitlog/internal/storage"
)

var forceBuild bool

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export all workouts and exercises to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, err := defaultDumpPath()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			outputFile = args[0]
		}

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Export(ctx, outputFile); err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		fmt.Printf("✅ Database exported successfully to %s\n", outputFile)
		return nil
	},
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Replace the database contents with the given TOML dump file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Import(ctx, args[0], forceBuild); err != nil {
			if errors.Is(err, storage.ErrEmptyDump) {
				return fmt.Errorf("Refusing to replace the database with an empty dump (use --force to do it anyway)")
			}
			return fmt.Errorf("Failed to build database: %w", err)
		}
		fmt.Println("✅ Database built successfully from TOML dump.")
		return nil
	},
}

// defaultDumpPath is ~/.config/fitlog/db_dump.toml.
func defaultDumpPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "db_dump.toml"), nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(buildDBCmd)
	buildDBCmd.Flags().BoolVarP(&forceBuild, "force", "f", false, "Allow a dump with no workouts to empty the database")
}
