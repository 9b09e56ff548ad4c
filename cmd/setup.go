package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/print-calc/internal/config"
	"github.com/theirongolddev/print-calc/internal/logging"
	"github.com/theirongolddev/print-calc/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	path := configPath()

	// Edit the file contents only; env overrides must not be written back.
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	values := tui.NewSetupValues(cfg)
	form := tui.NewSetupForm(cfg, &values)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(out, "  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	if err := saveSetup(cfg, values, path); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", path)
	fmt.Fprintln(out, "  Run `print-calc config` to review, or `print-calc manual -w 50 -t 2` to try it.")
	fmt.Fprintln(out)
	return nil
}

// saveSetup applies the form values to cfg and writes it to path.
func saveSetup(cfg config.Config, values tui.SetupValues, path string) error {
	if err := values.Apply(&cfg); err != nil {
		return err
	}
	if err := config.SaveTo(cfg, path); err != nil {
		return err
	}
	logging.Info("saved config", zap.String("path", path))
	return nil
}
