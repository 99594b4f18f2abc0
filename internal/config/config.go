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
	SendDetection  SendDetection  `mapstructure:",squash"`
	DeliveryResync DeliveryResync `mapstructure:",squash"`
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

// SendDetection parametriza a detecção de disparos de newsletter.
type SendDetection struct {
	// GapDays é o espaçamento máximo entre datas do mesmo disparo.
	GapDays int `mapstructure:"send_detection_gap_days"`
	// MinOpenRate é a fração mínima da base de assinantes abaixo da qual
	// as impressões de um dia são tratadas como ruído. Zero desabilita a
	// supressão (o limiar ainda não foi definido pelo produto).
	MinOpenRate float64 `mapstructure:"send_detection_min_open_rate"`
}

// DeliveryResync parametriza a recomputação periódica dos resumos de entrega.
type DeliveryResync struct {
	CronSchedule        string `mapstructure:"delivery_resync_cron"`
	RequestDelaySeconds int    `mapstructure:"delivery_resync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"delivery_resync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/hub")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("SEND_DETECTION_GAP_DAYS", 2)
	viper.SetDefault("SEND_DETECTION_MIN_OPEN_RATE", 0.0) // Supressão de ruído desabilitada

	viper.SetDefault("DELIVERY_RESYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("DELIVERY_RESYNC_REQUEST_DELAY_SECONDS", 0)
	viper.SetDefault("DELIVERY_RESYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env pelo godotenv, tentando localizações conhecidas
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

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
