package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"dms-converter/internal/config"
	"dms-converter/internal/dms"
	"dms-converter/internal/logging"
	"dms-converter/internal/repository"
	"dms-converter/internal/service"
	"dms-converter/internal/spreadsheet"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the spreadsheet to import (defaults to INPUT_PATH)")
	output := flag.String("output", "", "Where to write the converted table (defaults to OUTPUT_PATH)")
	configDir := flag.String("config", "configs", "Directory holding app.env")
	flag.Parse()

	// Load config
	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(os.Stderr, cfg.LogLevel)

	if *file != "" {
		cfg.InputPath = *file
	}
	if *output != "" {
		cfg.OutputPath = *output
	}
	if cfg.DBSource == "" {
		fmt.Println("Error: DB_SOURCE is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", cfg.InputPath)

	// Connect to DB
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	req, err := importRequest(cfg)
	if err != nil {
		fmt.Printf("Error in configuration: %v\n", err)
		pool.Close()
		os.Exit(1)
	}

	converter := service.NewConvertService(spreadsheet.NewStore(), log.Logger)
	importer := service.NewImportService(converter, repository.NewRepository(pool))

	result, err := importer.Import(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("kind", service.KindOf(err).String()).Msg("import failed")
		pool.Close()
		os.Exit(1)
	}

	fmt.Printf("Converted table written to %s\n", result.OutputPath)
	fmt.Printf("Successfully imported %d points from %s\n", result.Imported, result.Source)
}

// importRequest builds the conversion request for an import run.
func importRequest(cfg config.Config) (service.ConvertRequest, error) {
	lon, err := dms.ParseHemisphere(cfg.LongitudeHemisphere)
	if err != nil {
		return service.ConvertRequest{}, fmt.Errorf("LONGITUDE_HEMISPHERE: %w", err)
	}
	lat, err := dms.ParseHemisphere(cfg.LatitudeHemisphere)
	if err != nil {
		return service.ConvertRequest{}, fmt.Errorf("LATITUDE_HEMISPHERE: %w", err)
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
