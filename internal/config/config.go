package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"time"
)

type Config struct {
	Env        string `yaml:"env" env-default:"prod"`
	HTTPServer `yaml:"http_server"`
	DBUser     string `yaml:"db_user" env-required:"true"`
	DBPassword string `yaml:"db_password" env-required:"false"`
	DBHost     string `yaml:"db_host" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env-default:"3306"`
	DBName     string `yaml:"db_name" env-required:"true"`
	ParseTime  bool   `yaml:"parse_time"`

	Analytics Analytics `yaml:"analytics"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

// Analytics — бизнес-константы движка аналитики. Пороги согласованы с
// производством, в коде нигде не дублируются.
type Analytics struct {
	CriticalBlockedRatio float64 `yaml:"critical_blocked_ratio" env-default:"0.5"`
	CriticalAgedCount    int     `yaml:"critical_aged_count" env-default:"3"`
	WarningBlockedRatio  float64 `yaml:"warning_blocked_ratio" env-default:"0.25"`
	ImbalanceShare       float64 `yaml:"imbalance_share" env-default:"0.6"`

	DefaultShiftMinutes float64 `yaml:"default_shift_minutes" env-default:"690"`
	ReviewThreshold     float64 `yaml:"review_threshold" env-default:"80"`
}

func MustConfig() *Config {
	var cfg Config
	a := "./config/local.yaml"

	if err := cleanenv.ReadConfig(a, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
