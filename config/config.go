package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort      string
	MetricsPort      string
	BaseURL          string
	PostgreSQLConfig PostgreSQLConfig
	JWTConfig        JWTConfig
	KafkaConfig      KafkaConfig
	RedisConfig      RedisConfig
	TracingConfig    TracingConfig
	ProcessorConfig  ProcessorConfig
}

type PostgreSQLConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
}

type JWTConfig struct {
	JWTSecret string
	JWTKid    string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

// RedisConfig is optional. An empty address keeps the allocator on the
// ledger's read-max sequence.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type TracingConfig struct {
	CollectorHost string
	ServiceName   string
}

type ProcessorConfig struct {
	ID      int64
	Name    string
	Mode    string
	IPNPath string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		BaseURL:     os.Getenv("BASE_URL"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		JWTConfig: JWTConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			JWTKid:    os.Getenv("JWT_KID"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		RedisConfig: RedisConfig{
			Address:  os.Getenv("REDIS_ADDRESS"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
			ServiceName:   getEnvOrDefault("SERVICE_NAME", "cash-payment-service"),
		},
		ProcessorConfig: ProcessorConfig{
			Name:    getEnvOrDefault("PROCESSOR_NAME", "BBPCash"),
			Mode:    getEnvOrDefault("PROCESSOR_MODE", "test"),
			IPNPath: getEnvOrDefault("PROCESSOR_IPN_PATH", "/api/v1/payments/cash/ipn"),
		},
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	redisDB, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err == nil {
		conf.RedisConfig.DB = redisDB
	}

	processorID, err := strconv.ParseInt(os.Getenv("PROCESSOR_ID"), 10, 64)
	if err == nil {
		conf.ProcessorConfig.ID = processorID
	}

	return &conf
}

// Validate checks the settings the payment flows cannot run without.
// BASE_URL is where confirmed payers land when no usable return URL came
// back on the callback, so it has to be an absolute http(s) URL.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("BASE_URL must be an absolute http(s) URL, got %q", c.BaseURL)
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
