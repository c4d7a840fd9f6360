package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL string `mapstructure:"API_BASE_URL"`
	SocketURL  string `mapstructure:"SOCKET_URL"`

	// REST client
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`

	// Debounced search
	SearchDebounce time.Duration `mapstructure:"SEARCH_DEBOUNCE"`

	// Realtime bridge reconnection
	ReconnectAttempts int           `mapstructure:"RECONNECT_ATTEMPTS"`
	ReconnectDelay    time.Duration `mapstructure:"RECONNECT_DELAY"`
	ReconnectDelayMax time.Duration `mapstructure:"RECONNECT_DELAY_MAX"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("SOCKET_URL", "ws://localhost:8000/socket")
	viper.SetDefault("REQUEST_TIMEOUT", 2*time.Minute)
	viper.SetDefault("SEARCH_DEBOUNCE", 400*time.Millisecond)
	viper.SetDefault("RECONNECT_ATTEMPTS", 5)
	viper.SetDefault("RECONNECT_DELAY", time.Second)
	viper.SetDefault("RECONNECT_DELAY_MAX", 3*time.Second)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}
}
