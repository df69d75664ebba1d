package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Backends disponíveis para a coleção de usuários
const (
	UserStoreMemory   = "memory"
	UserStorePostgres = "postgres"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Metrics  Metrics  `mapstructure:",squash"`
	Snapshot Snapshot `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN       string `mapstructure:"-"`
	UserStore string `mapstructure:"user_store"`
	Driver    string `mapstructure:"database_driver"`
	Password  string `mapstructure:"database_password"`
	URL       string `mapstructure:"database_url"`
	User      string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Metrics struct {
	Enabled bool `mapstructure:"metrics_enabled"`
}

// Snapshot configura o job que recalcula os indicadores do pipeline para o Prometheus
type Snapshot struct {
	Enabled      bool   `mapstructure:"snapshot_enabled"`
	CronSchedule string `mapstructure:"snapshot_cron_schedule"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "5000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5000,http://localhost:5173")

	v.SetDefault("USER_STORE", UserStoreMemory)
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/salesflow?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")

	v.SetDefault("METRICS_ENABLED", true)

	v.SetDefault("SNAPSHOT_ENABLED", true)
	v.SetDefault("SNAPSHOT_CRON_SCHEDULE", "*/5 * * * *") // A cada 5 minutos

	v.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// O .env é opcional: as variáveis já podem ter sido carregadas pelo godotenv
	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.UserStore = strings.ToLower(strings.TrimSpace(config.Database.UserStore))
	switch config.Database.UserStore {
	case UserStoreMemory, UserStorePostgres:
	default:
		return nil, fmt.Errorf("config: USER_STORE inválido: %q", config.Database.UserStore)
	}

	config.Server.AllowedOrigins = trimEmpty(config.Server.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func trimEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
