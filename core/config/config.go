package config

import (
	"reflect"
	"strings"

	"catalog-sync/core/logger"
	"catalog-sync/core/moysklad"
	"catalog-sync/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Catalog holds configuration for the catalog sync feature. It lives here
// rather than in the feature package so this package only depends on core
// packages.
type Catalog struct {
	// Enabled toggles the feature and its routes.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// SyncOnStart runs one full reconciliation right after startup, mirroring
	// the initial catalog load of the original integration.
	SyncOnStart bool `mapstructure:"sync_on_start" default:"true"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// MoySklad holds configuration for the inventory API connection.
	MoySklad moysklad.Config `mapstructure:"moysklad"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Catalog holds configuration for the catalog sync feature.
	Catalog Catalog `mapstructure:"catalog"`
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

	// Map environment variables to nested keys (e.g. MOYSKLAD_USERNAME -> moysklad.username)
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

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

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
