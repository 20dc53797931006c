package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gicbank-dev/gicbank/internal/config"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default gicbank.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "AwesomeGIC Bank", "bank display name")

	return cmd
}

func runInit(dir, name string) error {
	path := filepath.Join(dir, "gicbank.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.Default(name)); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
