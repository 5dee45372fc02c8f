package main

import (
	"fmt"
	"strconv"

	"dms-converter/internal/config"
	"dms-converter/internal/service"

	"github.com/spf13/cobra"
)

func newParseCommand(cfg *config.Config) *cobra.Command {
	var hemisphere string

	cmd := &cobra.Command{
		Use:     "parse <dms>",
		Short:   "Convert a single DMS value",
		Example: `  converter parse "116°23'29\"" --hemisphere E`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := service.NewCoordinateService(cfg.StrictDMS).Convert(cmd.Context(), args[0], hemisphere)
			if err != nil {
				return err
			}
			if !d.Valid {
				fmt.Fprintln(cmd.OutOrStdout(), "no value")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(d.Degrees, 'f', 6, 64))
			return nil
		},
	}
	cmd.Flags().StringVar(&hemisphere, "hemisphere", "E", "hemisphere hint: N, S, E or W")

	return cmd
}
