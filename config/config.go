package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	globalConfig Config
	once         sync.Once
)

// Config holds every process-wide setting. Loaded once at startup and
// immutable afterwards.
type Config struct {
	// Server
	ServerHost         string        `mapstructure:"server_host"`
	ServerPort         int           `mapstructure:"server_port"`
	ServerReadTimeout  time.Duration `mapstructure:"server_read_timeout"`
	ServerWriteTimeout time.Duration `mapstructure:"server_write_timeout"`
	ServerIdleTimeout  time.Duration `mapstructure:"server_idle_timeout"`

	// Object store
	S3Endpoint           string `mapstructure:"s3_endpoint"`
	S3Region             string `mapstructure:"s3_region"`
	S3Bucket             string `mapstructure:"s3_bucket"`
	S3UseSSL             bool   `mapstructure:"s3_use_ssl"`
	S3CredentialsFile    string `mapstructure:"s3_credentials_file"`
	S3CredentialsProfile string `mapstructure:"s3_credentials_profile"`
	S3AccessKeyID        string `mapstructure:"s3_access_key_id"`
	S3SecretAccessKey    string `mapstructure:"s3_secret_access_key"`

	// Database
	DBType            string `mapstructure:"db_type"`
	DBHost            string `mapstructure:"db_host"`
	DBPort            int    `mapstructure:"db_port"`
	DBUsername        string `mapstructure:"db_username"`
	DBPassword        string `mapstructure:"db_password"`
	DBName            string `mapstructure:"db_name"`
	DBFilePath        string `mapstructure:"db_file_path"`
	DBMaxOpenConns    int    `mapstructure:"db_max_open_conns"`
	DBMaxIdleConns    int    `mapstructure:"db_max_idle_conns"`
	DBConnMaxLifetime int    `mapstructure:"db_conn_max_lifetime"`

	// Listing page size. Listing is currently unpaginated.
	PageSize int `mapstructure:"page_size"`
}

// InitConfig initializes the configuration exactly once.
func InitConfig() {
	once.Do(func() {
		loadConfig()
	})
}

func Get() *Config {
	return &globalConfig
}

func loadConfig() {
	setDefaults()

	configFile := viper.GetString("config_file_path")
	if configFile == "" {
		configFile = ".env"
	}
	viper.SetConfigFile(configFile)
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "Info: .env file not found, using defaults and environment variables")
	} else {
		fmt.Fprintln(os.Stderr, "Info: Loaded configuration from .env file")
	}

	viper.AutomaticEnv()
	for _, key := range viper.AllKeys() {
		viper.BindEnv(key)
	}

	if err := viper.Unmarshal(&globalConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: Unable to unmarshal config, %v\n", err)
		os.Exit(1)
	}
}

func setDefaults() {
	viper.SetDefault("server_host", "0.0.0.0")
	viper.SetDefault("server_port", 8081)
	viper.SetDefault("server_read_timeout", "15s")
	viper.SetDefault("server_write_timeout", "30s")
	viper.SetDefault("server_idle_timeout", "120s")

	viper.SetDefault("s3_endpoint", "s3.amazonaws.com")
	viper.SetDefault("s3_region", "us-east-2")
	viper.SetDefault("s3_bucket", "photoapp-assets")
	viper.SetDefault("s3_use_ssl", true)
	viper.SetDefault("s3_credentials_file", "")
	viper.SetDefault("s3_credentials_profile", "s3readwrite")
	viper.SetDefault("s3_access_key_id", "")
	viper.SetDefault("s3_secret_access_key", "")

	viper.SetDefault("db_type", "mysql")
	viper.SetDefault("db_host", "localhost")
	viper.SetDefault("db_port", 3306)
	viper.SetDefault("db_username", "photoapp")
	viper.SetDefault("db_password", "")
	viper.SetDefault("db_name", "photoapp")
	viper.SetDefault("db_file_path", "")
	viper.SetDefault("db_max_open_conns", 100)
	viper.SetDefault("db_max_idle_conns", 25)
	viper.SetDefault("db_conn_max_lifetime", 3600)

	viper.SetDefault("page_size", 12)
}

// Addr returns the listen address in "host:port" form.
func (c *Config) Addr() string {
	host := c.ServerHost
	if host == "" {
		host = "0.0.0.0"
	}
	port := c.ServerPort
	if port == 0 {
		port = 8081
	}
	return fmt.Sprintf("%s:%d", host, port)
}
