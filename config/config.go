// config/config.go
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	API           APIConfiguration
	Storage       StorageConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Audit         AuditConfiguration
	Export        ExportConfiguration
}

// APIConfiguration stores the backend endpoint settings
type APIConfiguration struct {
	BaseURL  string `mapstructure:"base_url"`
	TenantID string `mapstructure:"tenant_id"`
}

// StorageConfiguration selects where the persisted session record lives
type StorageConfiguration struct {
	Backend string // "file" or "redis"
	Path    string
	Seat    string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr          string
	Password      string
	DB            int
	EncryptionKey string `mapstructure:"encryption_key"`
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

// AuditConfiguration selects the audit-trail sink
type AuditConfiguration struct {
	Backend string // "file" or "elasticsearch"
	Path    string
}

// ExportConfiguration stores where downloaded reports are written
type ExportConfiguration struct {
	Dir string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.AddConfigPath(defaultConfigDir())
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("HMS")
	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("api.base_url", "http://localhost:5000")
	viper.SetDefault("api.tenant_id", "")
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.path", filepath.Join(defaultConfigDir(), "session.json"))
	viper.SetDefault("storage.seat", "default")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("audit.backend", "file")
	viper.SetDefault("audit.path", filepath.Join(defaultConfigDir(), "audit.log"))
	viper.SetDefault("export.dir", ".")
	viper.SetDefault("log.dir", defaultConfigDir())

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".hmsctl")
}
