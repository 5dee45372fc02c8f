package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"dms-converter/internal/dms"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	InputPath           string `mapstructure:"INPUT_PATH"`
	OutputPath          string `mapstructure:"OUTPUT_PATH"`
	SheetName           string `mapstructure:"SHEET_NAME"`
	LongitudeColumn     string `mapstructure:"LONGITUDE_COLUMN"`
	LatitudeColumn      string `mapstructure:"LATITUDE_COLUMN"`
	LongitudeHemisphere string `mapstructure:"LONGITUDE_HEMISPHERE"`
	LatitudeHemisphere  string `mapstructure:"LATITUDE_HEMISPHERE"`
	DecimalSuffix       string `mapstructure:"DECIMAL_SUFFIX"`
	StrictDMS           bool   `mapstructure:"STRICT_DMS"`
	PreviewRows         int    `mapstructure:"PREVIEW_ROWS"`
	LogLevel            string `mapstructure:"LOG_LEVEL"`
	DBSource            string `mapstructure:"DB_SOURCE"`
	ServerAddress       string `mapstructure:"SERVER_ADDRESS"`
}

var defaults = map[string]any{
	"INPUT_PATH":           "input.xlsx",
	"OUTPUT_PATH":          "output.xlsx",
	"SHEET_NAME":           "",
	"LONGITUDE_COLUMN":     "经度",
	"LATITUDE_COLUMN":      "纬度",
	"LONGITUDE_HEMISPHERE": "E",
	"LATITUDE_HEMISPHERE":  "N",
	"DECIMAL_SUFFIX":       "_decimal",
	"STRICT_DMS":           false,
	"PREVIEW_ROWS":         10,
	"LOG_LEVEL":            "info",
	"DB_SOURCE":            "",
	"SERVER_ADDRESS":       ":8080",
}

// LoadConfig reads app.env from path. A missing file is not an error; the
// defaults and the environment still apply. A .env file in the working
// directory is loaded into the environment first when present.
func LoadConfig(path string) (config Config, err error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read %s: %w", filepath.Join(path, "app.env"), err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: %w", err)
	}
	return config, config.Validate()
}

// Validate checks the hemisphere hints match their columns and that the
// derived column names leave the source columns alone.
func (c Config) Validate() error {
	lon, err := dms.ParseHemisphere(c.LongitudeHemisphere)
	if err != nil {
		return fmt.Errorf("config: LONGITUDE_HEMISPHERE: %w", err)
	}
	if lon.IsLatitude() {
		return fmt.Errorf("config: LONGITUDE_HEMISPHERE must be E or W, got %s", lon)
	}
	lat, err := dms.ParseHemisphere(c.LatitudeHemisphere)
	if err != nil {
		return fmt.Errorf("config: LATITUDE_HEMISPHERE: %w", err)
	}
	if !lat.IsLatitude() {
		return fmt.Errorf("config: LATITUDE_HEMISPHERE must be N or S, got %s", lat)
	}
	if c.LongitudeColumn == "" || c.LatitudeColumn == "" {
		return fmt.Errorf("config: LONGITUDE_COLUMN and LATITUDE_COLUMN are required")
	}
	if c.LongitudeColumn == c.LatitudeColumn {
		return fmt.Errorf("config: LONGITUDE_COLUMN and LATITUDE_COLUMN must differ")
	}
	for _, derived := range []string{c.LongitudeColumn + c.DecimalSuffix, c.LatitudeColumn + c.DecimalSuffix} {
		if derived == c.LongitudeColumn || derived == c.LatitudeColumn {
			return fmt.Errorf("config: DECIMAL_SUFFIX %q makes %q replace a source column", c.DecimalSuffix, derived)
		}
	}
	return nil
}
