package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPServConfig struct {
	ServerAddr string `env:"HTTP_SERVER_ADDRESS" env-default:":8080"`
}

type CORSConfig struct {
	AllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" env-default:"http://localhost:3000"`
	MaxAge       time.Duration `env:"CORS_MAX_AGE" env-default:"12h"`
}

type APILimiter struct {
	RPC   float64       `env:"API_LIMITER_RPC" env-default:"50"`
	Burst int           `env:"API_LIMITER_BURST" env-default:"100"`
	TTL   time.Duration `env:"API_LIMITER_EXP_TTL" env-default:"1h"`
}

type Config struct {
	HTTPServ HTTPServConfig
	CORS     CORSConfig
	Limiter  APILimiter
}

// MustLoad reads the -config flag (path to a .env file) and the environment.
func MustLoad() *Config {
	path := getConfigPath()

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			panic("config file does not exists" + path)
		}
		if err := godotenv.Load(path); err != nil {
			panic(fmt.Sprintf("failed to load .env file at %s: %v", path, err))
		}
	}

	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic(fmt.Sprintf("Failed to load environment variables: %v", err))
	}

	return &cfg
}

func getConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	return res
}
