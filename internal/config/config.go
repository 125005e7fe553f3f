package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrMissingCredential indica que a chave da conta padrão não foi configurada
var ErrMissingCredential = errors.New("credencial do Flowbiz não configurada")

type Config struct {
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	Flowbiz               Flowbiz               `mapstructure:",squash"`
	Aggregation           Aggregation           `mapstructure:",squash"`
	DashboardSnapshotSync DashboardSnapshotSync `mapstructure:",squash"`
	Web                   Web                   `mapstructure:",squash"`
	Auth                  Auth                  `mapstructure:",squash"`
	Cors                  Cors                  `mapstructure:",squash"`
	Accounts              *AccountRegistry      `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Host     string `mapstructure:"db_host"`
	Port     string `mapstructure:"db_port"`
	Name     string `mapstructure:"db_name"`
	User     string `mapstructure:"db_user"`
	Password string `mapstructure:"db_password"`
	SSLMode  string `mapstructure:"db_sslmode"`
}

// ConnectionURL monta a URL do lib/pq; usuário e senha vazios ou com espaços continuam válidos
func (d Database) ConnectionURL() string {
	host := d.Host
	if d.Port != "" {
		host = net.JoinHostPort(d.Host, d.Port)
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   host,
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}

	return dsn.String()
}

// Enabled informa se há banco configurado para as estatísticas de campanha
func (d Database) Enabled() bool {
	return strings.TrimSpace(d.Host) != ""
}

type Flowbiz struct {
	Endpoint           string  `mapstructure:"flowbiz_endpoint"`
	MethodParam        string  `mapstructure:"flowbiz_method_param"`
	ResponseFormat     string  `mapstructure:"flowbiz_response_format"`
	AppendMethodPath   string  `mapstructure:"flowbiz_append_method_path"`
	TimeoutSeconds     float64 `mapstructure:"flowbiz_timeout_seconds"`
	DefaultAccount     string  `mapstructure:"flowbiz_default_account"`
	RateLimitRPS       float64 `mapstructure:"flowbiz_rate_limit_rps"`
	BreakerEnabled     bool    `mapstructure:"flowbiz_breaker_enabled"`
	BreakerMaxFailures uint32  `mapstructure:"flowbiz_breaker_max_failures"`
	BreakerOpenSeconds int     `mapstructure:"flowbiz_breaker_open_seconds"`
}

// ShouldAppendMethodPath aceita 1, true ou yes (sem diferenciar maiúsculas)
func (f Flowbiz) ShouldAppendMethodPath() bool {
	switch strings.ToLower(strings.TrimSpace(f.AppendMethodPath)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func (f Flowbiz) Timeout() time.Duration {
	if f.TimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(f.TimeoutSeconds * float64(time.Second))
}

type Aggregation struct {
	RetryAttempts              int `mapstructure:"campaign_fetch_retry_attempts"`
	RetryBackoffSeconds        int `mapstructure:"campaign_fetch_retry_backoff_seconds"`
	DashboardRecordsPerAccount int `mapstructure:"dashboard_records_per_account"`
}

type DashboardSnapshotSync struct {
	CronSchedule string `mapstructure:"dashboard_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"dashboard_snapshot_sync_enabled"`
}

type Web struct {
	TemplatesDir string `mapstructure:"web_templates_dir"`
	StaticDir    string `mapstructure:"web_static_dir"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "5001")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	// Banco vazio desliga a consulta de acessos e leads
	viper.SetDefault("DB_HOST", "")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "")
	viper.SetDefault("DB_USER", "")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_SSLMODE", "disable")

	viper.SetDefault("FLOWBIZ_ENDPOINT", "https://mbiz.mailclick.me/api.php")
	viper.SetDefault("FLOWBIZ_METHOD_PARAM", "Command")
	viper.SetDefault("FLOWBIZ_RESPONSE_FORMAT", "JSON")
	viper.SetDefault("FLOWBIZ_APPEND_METHOD_PATH", "false")
	viper.SetDefault("FLOWBIZ_TIMEOUT_SECONDS", 20)
	viper.SetDefault("FLOWBIZ_DEFAULT_ACCOUNT", "Voxcall")
	viper.SetDefault("FLOWBIZ_RATE_LIMIT_RPS", 0)        // 0 desliga o limite
	viper.SetDefault("FLOWBIZ_BREAKER_ENABLED", false)   // Circuit breaker por conta
	viper.SetDefault("FLOWBIZ_BREAKER_MAX_FAILURES", 5)  // Falhas consecutivas para abrir
	viper.SetDefault("FLOWBIZ_BREAKER_OPEN_SECONDS", 60) // Tempo aberto antes de testar novamente

	viper.SetDefault("CAMPAIGN_FETCH_RETRY_ATTEMPTS", 3)
	viper.SetDefault("CAMPAIGN_FETCH_RETRY_BACKOFF_SECONDS", 1)
	viper.SetDefault("DASHBOARD_RECORDS_PER_ACCOUNT", 100)

	viper.SetDefault("DASHBOARD_SNAPSHOT_SYNC_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("DASHBOARD_SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("WEB_TEMPLATES_DIR", "templates")
	viper.SetDefault("WEB_STATIC_DIR", "static")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5001")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
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

	// As chaves das contas são dinâmicas e não passam pelo viper
	config.Accounts = LoadAccounts(os.Environ())

	logrus.WithFields(logrus.Fields{
		"accounts":        config.Accounts.Len(),
		"default_account": config.Flowbiz.DefaultAccount,
		"endpoint":        config.Flowbiz.Endpoint,
	}).Info("Contas do Flowbiz carregadas")

	config.Database.DSN = config.Database.ConnectionURL()

	return config, nil
}

// DefaultAPIKey retorna a chave da conta usada nas operações de conta única
func (c *Config) DefaultAPIKey() (string, error) {
	label := AccountKeyPrefix + c.Flowbiz.DefaultAccount
	key, ok := c.Accounts.Key(label)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingCredential, label)
	}
	return key, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
