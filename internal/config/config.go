package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Sankhya        Sankhya        `mapstructure:",squash"`
	AnalysisWarmup AnalysisWarmup `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
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

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

// Sankhya agrupa as credenciais e endpoints do gateway Sankhya. As URLs de
// serviço são derivadas da BaseURL em NewConfig.
type Sankhya struct {
	BaseURL  string `mapstructure:"sankhya_base_url"`
	AppKey   string `mapstructure:"sankhya_appkey"`
	Token    string `mapstructure:"sankhya_token"`
	Username string `mapstructure:"sankhya_username"`
	Password string `mapstructure:"sankhya_password"`

	LoginURL   string `mapstructure:"-"`
	ServiceURL string `mapstructure:"-"`
	OrdersURL  string `mapstructure:"-"`

	QueryTimeoutSeconds int `mapstructure:"sankhya_query_timeout_seconds"`
	OrderTimeoutSeconds int `mapstructure:"sankhya_order_timeout_seconds"`
}

type AnalysisWarmup struct {
	CronSchedule        string `mapstructure:"analysis_warmup_cron"`
	LookbackDays        int    `mapstructure:"analysis_warmup_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"analysis_warmup_request_delay_seconds"`
	Enabled             bool   `mapstructure:"analysis_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/crm")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("SANKHYA_BASE_URL", "https://api.sandbox.sankhya.com.br")
	viper.SetDefault("SANKHYA_APPKEY", "your_appkey")
	viper.SetDefault("SANKHYA_TOKEN", "your_token")
	viper.SetDefault("SANKHYA_USERNAME", "your_username")
	viper.SetDefault("SANKHYA_PASSWORD", "your_password")
	viper.SetDefault("SANKHYA_QUERY_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SANKHYA_ORDER_TIMEOUT_SECONDS", 15)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para o pré-aquecimento do cache de análise
	viper.SetDefault("ANALYSIS_WARMUP_CRON", "0 5 * * *")       // Todos os dias às 5h da manhã
	viper.SetDefault("ANALYSIS_WARMUP_LOOKBACK_DAYS", 30)       // Janela de 30 dias
	viper.SetDefault("ANALYSIS_WARMUP_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre usuários
	viper.SetDefault("ANALYSIS_WARMUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Sankhya.LoginURL = fmt.Sprintf("%s/login", config.Sankhya.BaseURL)
	config.Sankhya.ServiceURL = fmt.Sprintf(
		"%s/gateway/v1/mge/service.sbr?serviceName=CRUDServiceProvider.loadRecords&outputType=json",
		config.Sankhya.BaseURL,
	)
	config.Sankhya.OrdersURL = fmt.Sprintf("%s/v1/vendas/pedidos", config.Sankhya.BaseURL)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
