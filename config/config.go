package config

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/Astemirdum/biblioteca-service/pkg/logger"
	"github.com/Astemirdum/biblioteca-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Server   HTTPServer      `json:"server"`
	Database postgres.Config `json:"database"`
	Kafka    kafka.Config    `json:"kafka"`
	Log      logger.Log      `json:"log"`
}

type HTTPServer struct {
	Host         string        `json:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `json:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `json:"read-timeout" envconfig:"HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `json:"write-timeout" envconfig:"HTTP_WRITE_TIMEOUT" default:"10s"`
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}

var (
	once sync.Once
	cfg  Config
)

func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		if err := envconfig.Process("", &cfg); err != nil {
			log.Fatalf("read config: %v", err)
		}
		for _, op := range ops {
			op(&cfg)
		}
		printConfig(cfg)
	})
	return &cfg
}

func printConfig(cfg Config) {
	cfgPretty, err := json.MarshalIndent(cfg, "", " ")
	if err != nil {
		log.Fatalf("config pretty print: %v", err)
	}
	log.Printf("CONFIG:\n%s\n", cfgPretty)
}
