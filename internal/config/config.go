package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Auth       Auth       `yaml:"auth"`
	AMQP       AMQP       `yaml:"amqp"`
}

type Database struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env-default:"trainbooker"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Auth struct {
	// JWTSecret и AdminKey фиксируются на всё время жизни процесса.
	// Пустое значение заменяется случайным при старте и никогда не логируется.
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	AdminKey  string        `yaml:"admin_key" env:"ADMIN_KEY"`
	TokenTTL  time.Duration `yaml:"token_ttl" env-default:"1h"`
}

type AMQP struct {
	// Пустой URL отключает публикацию событий бронирования.
	URL string `yaml:"url" env:"AMQP_URL"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = mustRandomSecret()
	}
	if cfg.Auth.AdminKey == "" {
		cfg.Auth.AdminKey = mustRandomSecret()
	}

	return &cfg
}

func mustRandomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("cannot generate secret: %s", err)
	}

	return hex.EncodeToString(buf)
}
