package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"CANVAS_ARCADE_LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"CANVAS_ARCADE_LOG_FILE" env-default:""`
	Mode     string  `yaml:"mode" env:"CANVAS_ARCADE_MODE" env-default:"window"`
	Window   Window  `yaml:"window"`
	Snake    Snake   `yaml:"snake"`
	Canvas   Canvas  `yaml:"canvas"`
	Storage  Storage `yaml:"storage"`
}

type Window struct {
	Width  int    `yaml:"width" env:"CANVAS_ARCADE_WINDOW_WIDTH" env-default:"1024"`
	Height int    `yaml:"height" env:"CANVAS_ARCADE_WINDOW_HEIGHT" env-default:"768"`
	Title  string `yaml:"title" env-default:"Canvas Arcade"`
	FPS    int    `yaml:"fps" env-default:"60"`
	Route  string `yaml:"route" env:"CANVAS_ARCADE_ROUTE" env-default:"snake"`
}

type Snake struct {
	GridSize       int           `yaml:"grid-size" env-default:"20"`
	BaseInterval   time.Duration `yaml:"base-interval" env-default:"150ms"`
	MinInterval    time.Duration `yaml:"min-interval" env-default:"50ms"`
	SpeedStep      time.Duration `yaml:"speed-step" env-default:"10ms"`
	SpeedUpEvery   int           `yaml:"speed-up-every" env-default:"50"`
	FoodPoints     int           `yaml:"food-points" env-default:"10"`
	RedrawInterval time.Duration `yaml:"redraw-interval" env-default:"100ms"`
	HighScoreKey   string        `yaml:"high-score-key" env-default:"snakeHighScore"`
	Seed           uint64        `yaml:"seed" env:"CANVAS_ARCADE_SEED" env-default:"0"`
}

type Canvas struct {
	BrushWidth  int    `yaml:"brush-width" env-default:"5"`
	JPEGQuality int    `yaml:"jpeg-quality" env-default:"92"`
	WEBPQuality int    `yaml:"webp-quality" env-default:"80"`
	ExportDir   string `yaml:"export-dir" env:"CANVAS_ARCADE_EXPORT_DIR" env-default:"."`
}

type Storage struct {
	Driver string `yaml:"driver" env:"CANVAS_ARCADE_STORAGE" env-default:"file"`
	Path   string `yaml:"path" env:"CANVAS_ARCADE_STORAGE_PATH" env-default:"data/highscore.json"`
	Redis  Redis  `yaml:"redis"`
}

type Redis struct {
	Host     string `yaml:"host" env:"CANVAS_ARCADE_REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"CANVAS_ARCADE_REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"CANVAS_ARCADE_REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env-default:"0"`
}

// Load reads the YAML file at path and applies env overrides. A missing file
// is not an error: defaults and environment are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		err := cleanenv.ReadConfig(path, config)
		if err == nil {
			return config, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from env: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations from the config file at path.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
