package configs

import (
	"errors"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers
const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Storage  `mapstructure:"storage"`
	Mongo    `mapstructure:"mongo"`
	Postgres `mapstructure:"postgres"`
}

// App struct
type App struct {
	Debug       bool   `mapstructure:"debug"`
	Env         string `mapstructure:"env"`
	Port        string `mapstructure:"port"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	MaxPageSize int    `mapstructure:"max_page_size"`
}

// Storage struct
type Storage struct {
	Driver string `mapstructure:"driver"`
}

// Mongo struct
type Mongo struct {
	URI                    string        `mapstructure:"uri"`
	Database               string        `mapstructure:"database"`
	Collection             string        `mapstructure:"collection"`
	ServerSelectionTimeout time.Duration `mapstructure:"server_selection_timeout"`
	SocketTimeout          time.Duration `mapstructure:"socket_timeout"`
}

// Postgres struct
type Postgres struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DbName       string `mapstructure:"database"`
	SSLMode      bool   `mapstructure:"sslmode"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

var config Config

var defaults = map[string]interface{}{
	"app.debug":                      false,
	"app.env":                        "development",
	"app.port":                       "5000",
	"app.log_level":                  "debug",
	"app.log_format":                 "text",
	"app.max_page_size":              100,
	"storage.driver":                 StorageMongo,
	"mongo.uri":                      "mongodb://localhost:27017",
	"mongo.database":                 "todo",
	"mongo.collection":               "todos",
	"mongo.server_selection_timeout": "5s",
	"mongo.socket_timeout":           "45s",
	"postgres.host":                  "localhost",
	"postgres.port":                  "5432",
	"postgres.username":              "postgres",
	"postgres.password":              "",
	"postgres.database":              "todo",
	"postgres.sslmode":               false,
	"postgres.max_idle_conns":        10,
	"postgres.max_open_conns":        100,
}

// InitViper func
// Loads <path>/.env when present, then <path>/config.yaml, then environment
// variables (APP_PORT, MONGO_URI, ...). A non-empty env overrides app.env.
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Println("Cannot load .env file: ", err)
	}

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
	if env != "" {
		viper.SetDefault("app.env", env)
	}
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
		log.Println("Config file not found, using defaults and environment")
	} else {
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			log.Println("Config file has changed: ", e.Name)
		})
	}
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}
