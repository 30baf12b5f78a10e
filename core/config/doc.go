// Package config provides configuration management for the ETL pipeline.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided
// into subsections:
//   - Database: relational store connection details (postgres by default)
//   - Source: raw-file location (local directory or S3 bucket)
//   - Log: logging level and format
//   - Pipeline: report directory, geo-fix file, dim_date range
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Source.Dir)
package config
