package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB     DBConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Server ServerConfig
	SMS    SMSConfig
	GeoIP  GeoIPConfig
	Rules  RulesConfig
}

type DBConfig struct {
	DBPath string // Путь к файлу SQLite
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type KafkaConfig struct {
	Brokers    []string
	AlertTopic string
}

type ServerConfig struct {
	Port int
}

type SMSConfig struct {
	ProviderURL string // URL внешнего SMS-провайдера; пусто = уведомления выключены
	APIKey      string
	Sender      string
}

type GeoIPConfig struct {
	CityDBPath string // Путь к GeoLite2-City.mmdb; пусто = резолвинг по IP выключен
}

// RulesConfig содержит пороги движка правил
type RulesConfig struct {
	AmountWindowSize  int     // Размер окна для статистической проверки
	ZScoreThreshold   float64 // Порог z-score для аномальной суммы
	GeoDistanceKm     float64 // Порог расстояния для географического дрейфа
	VelocityWindowMin int     // Окно проверки частых транзакций, минуты
	VelocityThreshold int     // Количество транзакций для срабатывания
	HighAmountCeiling float64 // Абсолютный потолок суммы
}

// DefaultRulesConfig возвращает пороги движка правил по умолчанию
func DefaultRulesConfig() RulesConfig {
	return RulesConfig{
		AmountWindowSize:  5,
		ZScoreThreshold:   2.5,
		GeoDistanceKm:     500,
		VelocityWindowMin: 5,
		VelocityThreshold: 3,
		HighAmountCeiling: 100000,
	}
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/fraud_monitoring.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Brokers:    []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			AlertTopic: getEnv("KAFKA_ALERT_TOPIC", "fraud.alerts"),
		},
		Server: ServerConfig{
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		SMS: SMSConfig{
			ProviderURL: getEnv("SMS_PROVIDER_URL", ""),
			APIKey:      getEnv("SMS_API_KEY", ""),
			Sender:      getEnv("SMS_SENDER", "FRAUDMON"),
		},
		GeoIP: GeoIPConfig{
			CityDBPath: getEnv("GEOIP_CITY_DB_PATH", ""),
		},
		Rules: RulesConfig{
			AmountWindowSize:  getEnvAsInt("RULE_AMOUNT_WINDOW_SIZE", 5),
			ZScoreThreshold:   getEnvAsFloat("RULE_ZSCORE_THRESHOLD", 2.5),
			GeoDistanceKm:     getEnvAsFloat("RULE_GEO_DISTANCE_KM", 500),
			VelocityWindowMin: getEnvAsInt("RULE_VELOCITY_WINDOW_MIN", 5),
			VelocityThreshold: getEnvAsInt("RULE_VELOCITY_THRESHOLD", 3),
			HighAmountCeiling: getEnvAsFloat("RULE_HIGH_AMOUNT_CEILING", 100000),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
