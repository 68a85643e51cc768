package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis    `yaml:"redis"`
	CatanAPI CatanAPI `yaml:"catan-api"`
	Cache    Cache    `yaml:"cache"`
	Board    Board    `yaml:"board"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// CatanAPI - the Catan AI server that records matches.
type CatanAPI struct {
	BaseURL string        `yaml:"base-url" env:"CATAN_API_BASE_URL" env-default:"http://localhost:8080"`
	Timeout time.Duration `yaml:"timeout" env:"CATAN_API_TIMEOUT" env-default:"10s"`
}

type Cache struct {
	TTL time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"1h"`
}

type Board struct {
	CanvasSize float64 `yaml:"canvas-size" env:"BOARD_CANVAS_SIZE" env-default:"850"`
	TileSize   float64 `yaml:"tile-size" env:"BOARD_TILE_SIZE" env-default:"70"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Board.Validate(); err != nil {
		panic(fmt.Errorf("invalid board config: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Validate - the layout itself never rejects sizes, so bad ones are caught here.
func (that *Board) Validate() error {
	if that.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %v", that.TileSize)
	}

	// the board spans 5 tiles of 2*sin(60) width plus margins
	if that.CanvasSize < 10*that.TileSize {
		return fmt.Errorf("canvas size %v is too small for tile size %v", that.CanvasSize, that.TileSize)
	}

	return nil
}
