package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/iota-uz/utils/fs"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/roster/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		panic(err)
	}
	return c
})

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if fs.FileExists(file) {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

type CatalogStoreOptions struct {
	RedisURL string `env:"CATALOG_REDIS_URL" envDefault:"localhost:6379"`
	RedisKey string `env:"CATALOG_REDIS_KEY" envDefault:"roster:tag_colors:v1"`
}

type Configuration struct {
	CatalogStore CatalogStoreOptions

	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"error"`

	// Actor marker stamped on records by bulk mutations when the caller
	// supplies none.
	BulkActorFallback string `env:"BULK_ACTOR_FALLBACK" envDefault:"system"`

	logger *logrus.Logger
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	if err := c.validate(); err != nil {
		return err
	}
	c.logger = logging.ConsoleLogger(c.LogrusLogLevel())
	return nil
}

func (c *Configuration) validate() error {
	if strings.TrimSpace(c.CatalogStore.RedisKey) == "" {
		return fmt.Errorf("CATALOG_REDIS_KEY must not be empty")
	}
	if strings.TrimSpace(c.BulkActorFallback) == "" {
		return fmt.Errorf("BULK_ACTOR_FALLBACK must not be empty")
	}
	return nil
}
