package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Twitter      Twitter      `mapstructure:",squash"`
	Instagram    Instagram    `mapstructure:",squash"`
	Sheets       Sheets       `mapstructure:",squash"`
	Fetch        Fetch        `mapstructure:",squash"`
	Demo         Demo         `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	AnalysisSync AnalysisSync `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Twitter struct {
	BaseURL     string `mapstructure:"twitter_base_url"`
	BearerToken string `mapstructure:"twitter_bearer_token"`
	MaxPages    int    `mapstructure:"twitter_max_pages"`
}

type Instagram struct {
	BaseURL        string    `mapstructure:"instagram_base_url"`
	Version        string    `mapstructure:"instagram_version"`
	URL            string    `mapstructure:"-"`
	AccessToken    string    `mapstructure:"instagram_access_token"`
	AppID          string    `mapstructure:"instagram_app_id"`
	AppSecret      string    `mapstructure:"instagram_app_secret"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

type Sheets struct {
	WebhookURL string `mapstructure:"sheets_webhook_url"`
}

type Fetch struct {
	TimeoutSeconds int `mapstructure:"fetch_timeout_seconds"`
}

// FetchTimeout é o prazo máximo das buscas externas de uma análise
func (f Fetch) FetchTimeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

type Demo struct {
	Enabled bool `mapstructure:"demo_mode_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type AnalysisSync struct {
	CronSchedule        string `mapstructure:"analysis_sync_cron"`
	PeriodDays          int    `mapstructure:"analysis_sync_period_days"`
	RequestDelaySeconds int    `mapstructure:"analysis_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"analysis_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"analysis_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sns_analyzer")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TWITTER_BASE_URL", "https://api.twitter.com")
	viper.SetDefault("TWITTER_BEARER_TOKEN", "")
	viper.SetDefault("TWITTER_MAX_PAGES", 5)

	viper.SetDefault("INSTAGRAM_BASE_URL", "https://graph.instagram.com")
	viper.SetDefault("INSTAGRAM_VERSION", "v22.0")
	viper.SetDefault("INSTAGRAM_ACCESS_TOKEN", "")
	viper.SetDefault("INSTAGRAM_APP_ID", "your_app_id")
	viper.SetDefault("INSTAGRAM_APP_SECRET", "your_app_secret")

	viper.SetDefault("SHEETS_WEBHOOK_URL", "")

	viper.SetDefault("FETCH_TIMEOUT_SECONDS", 15)

	// Sem credenciais configuradas o modo demo evita chamadas externas
	viper.SetDefault("DEMO_MODE_ENABLED", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para a sincronização diária de análises
	viper.SetDefault("ANALYSIS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("ANALYSIS_SYNC_PERIOD_DAYS", 30)
	viper.SetDefault("ANALYSIS_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("ANALYSIS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("ANALYSIS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Instagram.URL = fmt.Sprintf("%s/%s", config.Instagram.BaseURL, config.Instagram.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// HasTwitterCredentials verifica se há token configurado para a API do Twitter
func (c *Config) HasTwitterCredentials() bool {
	return c.Twitter.BearerToken != ""
}

// HasInstagramCredentials verifica se há token configurado para a Graph API
func (c *Config) HasInstagramCredentials() bool {
	return c.Instagram.AccessToken != ""
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
