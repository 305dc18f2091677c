package configs

import (
	"errors"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port      int    `default:"8080"`
	PublicURL string `default:"http://localhost:8080"`
}

type Integrations struct {
	Retailer []string `default:"systembolaget"`
}

type Systembolaget struct {
	SearchURL string `default:"https://api-extern.systembolaget.se/sb-api-ecommerce/v1/productsearch/search"`
	SiteURL   string `default:"https://www.systembolaget.se"`
	PageSize  int    `default:"10"`
}

type OpenAI struct {
	APIKey      string
	BaseURL     string
	VisionModel string `default:"gpt-4o"`
	TagModel    string `default:"gpt-4o-mini"`
}

type Storage struct {
	Directory string `default:"uploads"`
	MaxBytes  int64  `default:"10485760"`
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type RateLimit struct {
	Capacity        int `default:"20"`
	RefillPerMinute int `default:"10"`
}

type Offline struct {
	CacheVersion string   `default:"vinlogg-v1"`
	Precache     []string `default:"[/,/manifest.json,/wine-icon-192.png,/wine-icon-512.png]"`
}

type Config struct {
	DB            DB
	Server        Server
	Integrations  Integrations
	Systembolaget Systembolaget
	OpenAI        OpenAI
	Storage       Storage
	Redis         Redis
	RateLimit     RateLimit
	Offline       Offline
	Auth          Auth
}

type Auth struct {
	SecretKey string
	Audience  string
	Issuer    string
}

const envPrefix = "VINLOGG" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	return &config, nil
}
