package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"dms-converter/internal/config"
	"dms-converter/internal/logging"

	"github.com/spf13/cobra"
)

// reportedError marks a failure whose message already reached the user.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var configDir string
	var cfg config.Config

	cmd := &cobra.Command{
		Use:           "converter",
		Short:         "Convert DMS coordinates in spreadsheets to decimal degrees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig(configDir)
			if err != nil {
				return err
			}
			logging.Setup(stderr, cfg.LogLevel)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().StringVar(&configDir, "config", "configs", "directory holding app.env")

	cmd.AddCommand(newConvertCommand(&cfg))
	cmd.AddCommand(newParseCommand(&cfg))

	return cmd
}
