package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "BLOG"

type Config struct {
	Env        string `validate:"oneof=dev test prod"`
	HTTPServer HTTPServer
	GRPCServer GRPCServer
	Prometheus Prometheus
	Storage    Storage
	Redis      Redis
	Database   Database
	MQTT       MQTT
}

type HTTPServer struct {
	Address      string
	Port         int `validate:"gt=0,lte=65535"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// GRPCServer serves only the standard health service. Port 0 disables it.
type GRPCServer struct {
	Address string
	Port    int `validate:"gte=0,lte=65535"`
}

type Prometheus struct {
	Address string
	Port    int `validate:"gte=0,lte=65535"`
}

type Storage struct {
	Driver string `validate:"oneof=file redis postgres memory"`
	Path   string `validate:"required_if=Driver file"`
}

type Redis struct {
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
	Key      string `validate:"required"`
}

type Database struct {
	Username    string
	Password    string
	Host        string
	Port        string
	DbName      string
	Document    string `validate:"required"`
	AutoMigrate bool
}

func (d Database) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		d.Username, d.Password, d.Host, d.Port, d.DbName)
}

type MQTT struct {
	Broker      string
	ClientID    string
	TopicPrefix string
	Username    string
	Password    string
}

// MustLoad is Load for process startup: it exits on a malformed or invalid
// config instead of returning the error.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Printf("Error loading config: %s", err)
		os.Exit(1)
	}
	return cfg
}

// Load reads config.yaml from configPath when present. Values from a .env file
// and BLOG_* environment variables override the file.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:      v.GetString("http_server.address"),
			Port:         v.GetInt("http_server.port"),
			ReadTimeout:  v.GetDuration("http_server.read_timeout"),
			WriteTimeout: v.GetDuration("http_server.write_timeout"),
		},
		GRPCServer: GRPCServer{
			Address: v.GetString("grpc_server.address"),
			Port:    v.GetInt("grpc_server.port"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
		Storage: Storage{
			Driver: v.GetString("storage.driver"),
			Path:   v.GetString("storage.path"),
		},
		Redis: Redis{
			Address:  v.GetString("redis.address"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
			Key:      v.GetString("redis.key"),
		},
		Database: Database{
			Username:    v.GetString("database.username"),
			Password:    v.GetString("database.password"),
			Host:        v.GetString("database.host"),
			Port:        v.GetString("database.port"),
			DbName:      v.GetString("database.db_name"),
			Document:    v.GetString("database.document"),
			AutoMigrate: v.GetBool("database.auto_migrate"),
		},
		MQTT: MQTT{
			Broker:      v.GetString("mqtt.broker"),
			ClientID:    v.GetString("mqtt.client_id"),
			TopicPrefix: v.GetString("mqtt.topic_prefix"),
			Username:    v.GetString("mqtt.username"),
			Password:    v.GetString("mqtt.password"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.read_timeout", 10*time.Second)
	v.SetDefault("http_server.write_timeout", 10*time.Second)

	v.SetDefault("grpc_server.address", "0.0.0.0")
	v.SetDefault("grpc_server.port", 0)

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9103)

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.path", "posts.json")

	v.SetDefault("redis.address", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.key", "blog:posts")

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "blog")
	v.SetDefault("database.document", "posts")
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("mqtt.broker", "")
	v.SetDefault("mqtt.client_id", "")
	v.SetDefault("mqtt.topic_prefix", "blog/posts")
}
