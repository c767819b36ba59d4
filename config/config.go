package config

import (
	"log"
	"os"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/scoring"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string // Data Source Name (e.g., "memory" or file path for SQLite)
	}
	Report struct {
		// ContentFile optionally points at a YAML/JSON file overriding the
		// built-in report content table. Empty means use the shipped content.
		ContentFile string `mapstructure:"content_file"`
	}
	Seed struct {
		// DefaultUserCount is used when an admin seed request omits a count.
		DefaultUserCount int `mapstructure:"default_user_count"`
	}
}

// AppConfig is the global configuration instance.
var AppConfig Config

// LoadConfig loads configuration from file and environment variables.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../config") // For running from locations like tests

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.dsn", "memory")
	viper.SetDefault("report.content_file", "")
	viper.SetDefault("seed.default_user_count", 25)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("WARN: [Config] Configuration file (config.yaml) not found. Using environment variables and defaults.")
		} else {
			log.Fatalf("FATAL: [Config] Error reading configuration file: %v", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("FATAL: [Config] Failed to unmarshal configuration into AppConfig struct: %v", err)
	}

	// Environment variable overrides
	if port := os.Getenv("SERVER_PORT"); port != "" {
		AppConfig.Server.Port = port
		log.Printf("INFO: [Config] Server port overridden by environment variable SERVER_PORT: %s", port)
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		AppConfig.Database.DSN = dsn
		log.Printf("INFO: [Config] Database DSN overridden by environment variable DATABASE_DSN.")
	}

	log.Println("INFO: [Config] Configuration loading complete.")
}

// LoadReportContent resolves the report content table the selector will be
// constructed with. The override file, when configured and readable, fully
// replaces the built-in table; any problem falls back to the shipped content
// so a bad override can never take reports down. The scoring layer itself
// only ever sees the resolved table.
func LoadReportContent() scoring.ReportContentTable {
	path := AppConfig.Report.ContentFile
	if path == "" {
		return scoring.DefaultReportContent()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("WARN: [Config] Report content override '%s' could not be read: %v. Using built-in content.", path, err)
		return scoring.DefaultReportContent()
	}

	// Decoded with yaml.v3 rather than viper: viper lowercases every map key
	// on unmarshal, and the category/bucket keys are case-sensitive.
	var table scoring.ReportContentTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		log.Printf("WARN: [Config] Report content override '%s' could not be parsed: %v. Using built-in content.", path, err)
		return scoring.DefaultReportContent()
	}
	if len(table) == 0 {
		log.Printf("WARN: [Config] Report content override '%s' is empty. Using built-in content.", path)
		return scoring.DefaultReportContent()
	}

	log.Printf("INFO: [Config] Loaded report content override from '%s' (%d categories).", path, len(table))
	return table
}
