package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Log      LogConfig
	Session  SessionConfig
	Redis    RedisConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Latency  LatencyConfig
	Location LocationConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level string
}

// SessionConfig selects where flow sessions live ("memory" or "redis")
type SessionConfig struct {
	Store  string
	Expiry time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type OTPConfig struct {
	Code string
}

// LatencyConfig holds the simulated network delays. Zero disables a delay.
type LatencyConfig struct {
	OTPSend   time.Duration
	OTPVerify time.Duration
	Locate    time.Duration
}

type LocationConfig struct {
	DetectedCity string
}

type CORSConfig struct {
	AllowedOrigin string
}

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SESSION_STORE", SessionStoreMemory)
	v.SetDefault("SESSION_EXPIRY", "30m")
	v.SetDefault("JWT_SECRET", "medicompare-dev-secret")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("OTP_CODE", "1234")
	v.SetDefault("LATENCY_OTP_SEND", "1s")
	v.SetDefault("LATENCY_OTP_VERIFY", "800ms")
	v.SetDefault("LATENCY_LOCATE", "1500ms")
	v.SetDefault("DETECTED_CITY", "Hyderabad")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
}

// LoadConfig reads .env when present and lets environment variables override it
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	sessionExpiry, err := time.ParseDuration(v.GetString("SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 30 * time.Minute
	}

	store := v.GetString("SESSION_STORE")
	if store != SessionStoreMemory && store != SessionStoreRedis {
		return nil, errors.New("SESSION_STORE must be memory or redis")
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Session: SessionConfig{
			Store:  store,
			Expiry: sessionExpiry,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Expiry: sessionExpiry,
		},
		OTP: OTPConfig{
			Code: v.GetString("OTP_CODE"),
		},
		Latency: LatencyConfig{
			OTPSend:   v.GetDuration("LATENCY_OTP_SEND"),
			OTPVerify: v.GetDuration("LATENCY_OTP_VERIFY"),
			Locate:    v.GetDuration("LATENCY_LOCATE"),
		},
		Location: LocationConfig{
			DetectedCity: v.GetString("DETECTED_CITY"),
		},
		CORS: CORSConfig{
			AllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
	}

	return config, nil
}
