package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Settings holds the process-wide configuration. It is loaded once at
// startup and passed explicitly to everything that needs it.
type Settings struct {
	ProjectName    string `env:"PROJECT_NAME" envDefault:"blog-api"`
	ProjectVersion string `env:"PROJECT_VERSION" envDefault:"1.0.0"`

	ServerHost string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	ServerPort int    `env:"SERVER_PORT" envDefault:"8080"`
	GinMode    string `env:"GIN_MODE" envDefault:"debug"`

	SecretKey                string `env:"SECRET_KEY,required"`
	Algorithm                string `env:"JWT_ALGORITHM" envDefault:"HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`

	// DBDriver selects the backing store: "mysql" for deployments,
	// "sqlite" for local runs and tests.
	DBDriver string `env:"DB_DRIVER" envDefault:"mysql"`
	DBUser   string `env:"DB_USER"`
	DBPass   string `env:"DB_PASS"`
	DBHost   string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort   string `env:"DB_PORT" envDefault:"3306"`
	DBName   string `env:"DB_NAME"`
	DBPath   string `env:"DB_PATH" envDefault:"./data/blog.db"`

	StaticDir string `env:"STATIC_DIR" envDefault:"./static"`

	// Optional bootstrap superuser, created only when the users table
	// is empty.
	SuperuserEmail    string `env:"SUPERUSER_EMAIL"`
	SuperuserPassword string `env:"SUPERUSER_PASSWORD"`
}

// Load reads an optional .env file and parses the environment into a
// Settings struct.
func Load() (*Settings, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	settings := &Settings{}
	if err := env.Parse(settings); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	method := jwt.GetSigningMethod(settings.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("JWT_ALGORITHM %q is not a supported HMAC algorithm", settings.Algorithm)
	}

	return settings, nil
}

// ServerAddr returns the listen address in host:port form.
func (s *Settings) ServerAddr() string {
	return fmt.Sprintf("%s:%d", s.ServerHost, s.ServerPort)
}

// AccessTokenTTL returns the configured token lifetime.
func (s *Settings) AccessTokenTTL() time.Duration {
	return time.Duration(s.AccessTokenExpireMinutes) * time.Minute
}
