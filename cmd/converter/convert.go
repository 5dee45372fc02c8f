package main

import (
	"errors"

	"dms-converter/internal/config"
	"dms-converter/internal/dms"
	"dms-converter/internal/report"
	"dms-converter/internal/service"
	"dms-converter/internal/spreadsheet"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newConvertCommand(cfg *config.Config) *cobra.Command {
	var flags struct {
		input, output, sheet, lonColumn, latColumn string
		strict                                     bool
	}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Add decimal-degree columns to a spreadsheet",
		Long: "Reads the input table, converts the longitude and latitude DMS columns and writes all\n" +
			"original columns plus <column>_decimal columns to the output. The output format follows\n" +
			"its extension: .xlsx, .csv or .parquet. Nothing is written if any cell fails to convert.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("input") {
				cfg.InputPath = flags.input
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputPath = flags.output
			}
			if cmd.Flags().Changed("sheet") {
				cfg.SheetName = flags.sheet
			}
			if cmd.Flags().Changed("lon-column") {
				cfg.LongitudeColumn = flags.lonColumn
			}
			if cmd.Flags().Changed("lat-column") {
				cfg.LatitudeColumn = flags.latColumn
			}
			if cmd.Flags().Changed("strict") {
				cfg.StrictDMS = flags.strict
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			req, err := convertRequest(*cfg)
			if err != nil {
				return err
			}

			printer := report.NewPrinter(cmd.OutOrStdout())
			svc := service.NewConvertService(spreadsheet.NewStore(), log.Logger)

			result, err := svc.Convert(cmd.Context(), req)
			if err != nil {
				var schemaErr *service.SchemaError
				if errors.As(err, &schemaErr) {
					printer.Columns(schemaErr.Available)
				}
				printer.Failure(req.InputPath, err)
				log.Debug().Err(err).Str("kind", service.KindOf(err).String()).Msg("conversion failed")
				return &reportedError{err: err}
			}

			printer.Columns(result.InputColumns)
			printer.Preview(result, req.Longitude.Name, req.Latitude.Name, cfg.PreviewRows)
			printer.Success(result.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "input spreadsheet (.xlsx or .csv)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (.xlsx, .csv or .parquet)")
	cmd.Flags().StringVar(&flags.sheet, "sheet", "", "worksheet to read, first sheet when empty")
	cmd.Flags().StringVar(&flags.lonColumn, "lon-column", "", "longitude column name")
	cmd.Flags().StringVar(&flags.latColumn, "lat-column", "", "latitude column name")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "reject text after the DMS token")

	return cmd
}

// convertRequest builds a pipeline request from validated configuration.
func convertRequest(cfg config.Config) (service.ConvertRequest, error) {
	lon, err := dms.ParseHemisphere(cfg.LongitudeHemisphere)
	if err != nil {
		return service.ConvertRequest{}, err
	}
	lat, err := dms.ParseHemisphere(cfg.LatitudeHemisphere)
	if err != nil {
		return service.ConvertRequest{}, err
	}

	return service.ConvertRequest{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		Sheet:      cfg.SheetName,
		Longitude:  service.Column{Name: cfg.LongitudeColumn, Hemisphere: lon},
		Latitude:   service.Column{Name: cfg.LatitudeColumn, Hemisphere: lat},
		Suffix:     cfg.DecimalSuffix,
		Strict:     cfg.StrictDMS,
	}, nil
}
