package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string // Data Source Name ("memory" or file path for SQLite)
	}
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// CatalogConfig points at the YAML seed files the content repositories load
// at startup.
type CatalogConfig struct {
	KnowledgeBasePath string `mapstructure:"knowledge_base_path"`
	ResourcesPath     string `mapstructure:"resources_path"`
}

// AppConfig is the global configuration instance.
var AppConfig Config

// LoadConfig loads configuration from .env, config.yaml and environment
// variables, in that order of increasing precedence.
func LoadConfig() {
	// .env is optional; it only seeds the process environment.
	_ = godotenv.Load()

	viper.SetConfigName("config")    // Name of config file (without extension)
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")  // Path to look for the config file in
	viper.AddConfigPath(".")         // Optionally look for config in the working directory
	viper.AddConfigPath("../config") // For running from locations like tests

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.dsn", "memory")
	viper.SetDefault("catalog.knowledge_base_path", "data/knowledge_base.yaml")
	viper.SetDefault("catalog.resources_path", "data/resources.yaml")

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
		log.Println("INFO: [Config] Database DSN overridden by environment variable DATABASE_DSN.")
	}

	log.Println("INFO: [Config] Configuration loading complete.")
}
