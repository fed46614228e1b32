package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig           `envconfig:"APP"`
	HttpServer    HttpServerConfig    `envconfig:"HTTP_SERVER"`
	Database      DatabaseConfig      `envconfig:"DB"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	MessageStream MessageStreamConfig `envconfig:"MESSAGE_STREAM"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	UserService   UserServiceConfig   `envconfig:"USER_SERVICE"`
	Reservation   ReservationConfig   `envconfig:"RESERVATION"`
	Scheduler     SchedulerConfig     `envconfig:"SCHEDULER"`
}

type AppConfig struct {
	Name string `envconfig:"NAME" default:"reservation-service"`
	Env  string `envconfig:"ENV" default:"development"`
}

type HttpServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:"postgres"`
	Name            string        `envconfig:"NAME" default:"hotel_reservations"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
	// PoisonedTopic receives messages that could not be handled.
	PoisonedTopic string `envconfig:"POISONED_TOPIC" default:"poisoned_queue"`
}

type HttpClientConfig struct {
	Timeout time.Duration `envconfig:"TIMEOUT" default:"5s"`
	// Type selects the breaker: threshold, consecutive or rate.
	Type      string  `envconfig:"TYPE" default:"consecutive"`
	Threshold int64   `envconfig:"THRESHOLD" default:"5"`
	Rate      float64 `envconfig:"RATE" default:"0.5"`
	MinSample int64   `envconfig:"MIN_SAMPLE" default:"10"`
}

type UserServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"8081"`
}

type ReservationConfig struct {
	// PendingTTL of zero disables automatic expiry of pending reservations.
	PendingTTL  time.Duration `envconfig:"PENDING_TTL" default:"0"`
	LockBackend string        `envconfig:"LOCK_BACKEND" default:"redis"`
	LockExpiry  time.Duration `envconfig:"LOCK_EXPIRY" default:"30s"`
	LockTries   int           `envconfig:"LOCK_TRIES" default:"32"`
}

type SchedulerConfig struct {
	Enabled        bool   `envconfig:"ENABLED" default:"false"`
	Concurrency    int    `envconfig:"CONCURRENCY" default:"10"`
	MonitoringPort string `envconfig:"MONITORING_PORT" default:"8090"`
}

func InitConfig() *Config {
	// .env is optional, the environment always wins
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, reading configuration from environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}

	return &cfg
}
