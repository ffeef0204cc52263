package config

import (
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/book-exchange/exchange/internal/catalog"
	"github.com/Astemirdum/book-exchange/pkg/auth"
	"github.com/Astemirdum/book-exchange/pkg/kafka"
	"github.com/Astemirdum/book-exchange/pkg/logger"
	"github.com/Astemirdum/book-exchange/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
}

type Config struct {
	Server   HTTPServer     `yaml:"server"`
	Database postgres.DB    `yaml:"db"`
	Log      logger.Log     `yaml:"log"`
	Auth     auth.Config    `yaml:"auth"`
	Catalog  catalog.Config `yaml:"catalog"`
	Kafka    kafka.Config   `yaml:"kafka"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment once. Options are applied on top
// of the environment.
func NewConfig(opts ...Option) *Config {
	once.Do(func() {
		var c Config
		if err := envconfig.Process("", &c); err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, opt := range opts {
			opt(&c)
		}
		cfg = &c
	})
	return cfg
}
