package server

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds the processing daemon configuration.
type Config struct {
	Server   Server
	YouTube  YouTube
	Download Download
}

type Server struct {
	Host          string        `env:"host" env-default:"localhost"`
	Port          string        `env:"port" env-default:"8080"`
	ReadTimeout   time.Duration `env:"read_timeout" env-default:"5s"`
	WriteTimeout  time.Duration `env:"write_timeout" env-default:"120s"`
	IdleTimeout   time.Duration `env:"idle_timeout" env-default:"60s"`
	PublicBaseURL string        `env:"public_base_url" env-default:"http://localhost:8080"`
}

type YouTube struct {
	APIKey string `env:"youtube_api_key"`
}

type Download struct {
	Dir string `env:"download_dir"`
}

const configPath = "config/local.env"

// MustLoad reads the daemon configuration from config/local.env, exiting on
// any error.
func MustLoad() *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatal("config file does not exist: " + configPath)
	}

	if err := godotenv.Load(configPath); err != nil {
		log.Fatalf("cannot load env file: %s", err)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatal("failed to read config: " + err.Error())
	}

	if cfg.Download.Dir == "" {
		cfg.Download.Dir = os.TempDir()
	}

	return &cfg
}
