package config

import (
	"reflect"
	"strings"

	"shopzada-etl/core/database"
	"shopzada-etl/core/logger"
	"shopzada-etl/core/source"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Pipeline holds settings that apply across pipeline stages.
type Pipeline struct {
	// ReportDir is where profiling and validation CSV reports are written.
	ReportDir string `mapstructure:"report_dir" default:"reports"`
	// GeoFixes is the path to the optional geography correction CSV
	// (columns: wrong, correct). Absence is tolerated.
	GeoFixes string `mapstructure:"geo_fixes" default:"geo_fixes.csv"`
	// DimDateStartYear is the first year generated into dim_date.
	DimDateStartYear int `mapstructure:"dim_date_start_year" default:"2015"`
}

// Config holds all configuration for the pipeline.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Source holds configuration for the raw-file source.
	Source source.Config `mapstructure:"source"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Pipeline holds cross-stage pipeline settings.
	Pipeline Pipeline `mapstructure:"pipeline"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. DATABASE_HOST -> database.host)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
