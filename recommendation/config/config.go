package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/Astemirdum/library-recommendation/pkg/kafka"
	"github.com/Astemirdum/library-recommendation/pkg/logger"
	"github.com/Astemirdum/library-recommendation/pkg/postgres"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/engine"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"RECOMMENDATION_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"RECOMMENDATION_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

// Redis is optional; an empty Addr disables the popularity cache.
type Redis struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `json:"-" envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"REDIS_POPULAR_TTL" default:"10m"`
}

type Engine struct {
	Clusters         int     `envconfig:"ENGINE_CLUSTERS" default:"3"`
	MaxIterations    int     `envconfig:"ENGINE_MAX_ITERATIONS" default:"50"`
	MinSupport       float64 `envconfig:"ENGINE_MIN_SUPPORT" default:"0.2"`
	MinConfidence    float64 `envconfig:"ENGINE_MIN_CONFIDENCE" default:"0.5"`
	MaxItemsetSize   int     `envconfig:"ENGINE_MAX_ITEMSET_SIZE" default:"3"`
	RecentBorrows    int     `envconfig:"ENGINE_RECENT_BORROWS" default:"3"`
	TargetCount      int     `envconfig:"ENGINE_TARGET_COUNT" default:"5"`
	LedgerWindowDays int     `envconfig:"ENGINE_LEDGER_WINDOW_DAYS" default:"0"`
}

func (e Engine) Params() engine.Params {
	return engine.Params{
		Clusters:      e.Clusters,
		MaxIterations: e.MaxIterations,
		Mining: engine.MiningParams{
			MinSupport:     e.MinSupport,
			MinConfidence:  e.MinConfidence,
			MaxItemsetSize: e.MaxItemsetSize,
		},
	}
}

// LedgerSince is the lower bound of the ledger window, zero for all history.
func (e Engine) LedgerSince(now time.Time) time.Time {
	if e.LedgerWindowDays <= 0 {
		return time.Time{}
	}
	return now.AddDate(0, 0, -e.LedgerWindowDays)
}

const (
	GeneratorModeExec      = "exec"
	GeneratorModeInProcess = "inprocess"
)

type Generator struct {
	Mode         string        `envconfig:"GENERATOR_MODE" default:"exec"`
	Command      string        `envconfig:"GENERATOR_COMMAND" default:"generator"`
	Timeout      time.Duration `envconfig:"GENERATOR_TIMEOUT" default:"5m"`
	AutoActivate bool          `envconfig:"GENERATOR_AUTO_ACTIVATE" default:"true"`

	BreakerRecords  int           `envconfig:"GENERATOR_BREAKER_RECORDS" default:"4"`
	BreakerTimeout  time.Duration `envconfig:"GENERATOR_BREAKER_TIMEOUT" default:"1m"`
	BreakerFailures float64       `envconfig:"GENERATOR_BREAKER_FAILURES" default:"0.75"`
	BreakerRecovery int           `envconfig:"GENERATOR_BREAKER_RECOVERY" default:"1"`
}

type Config struct {
	Server    HTTPServer  `yaml:"server"`
	Database  postgres.DB `yaml:"db"`
	Kafka     kafka.Config
	Redis     Redis
	Engine    Engine
	Generator Generator
	Log       logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options set values the
// environment does not override.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

// printConfig writes to stderr so the generator keeps stdout for its result.
func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Fprintln(os.Stderr, string(jscfg))
}
