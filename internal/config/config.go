package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// GatewayBackend selects which contact gateway implementation serves CRM calls.
type GatewayBackend string

const (
	BackendRest GatewayBackend = "rest"
	BackendSDK  GatewayBackend = "sdk"
)

func (b GatewayBackend) IsValid() bool {
	switch b {
	case BackendRest, BackendSDK:
		return true
	}
	return false
}

type Config struct {
	Server  Server
	OAuth   OAuth
	HubSpot HubSpot
}

type Server struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type OAuth struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AuthURL      string
	TokenURL     string
}

type HubSpot struct {
	APIURL        string
	Backend       GatewayBackend
	ClientTimeout time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is merged in first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config
	var err error

	config.Server.Port, err = getEnvIntSafe("SERVER_PORT", 8080, false)
	if err != nil {
		return config, fmt.Errorf("server port config error: %w", err)
	}

	config.Server.ReadTimeout, err = getEnvDurationSafe("SERVER_READ_TIMEOUT", 15*time.Second, false)
	if err != nil {
		return config, fmt.Errorf("server read timeout config error: %w", err)
	}

	config.Server.WriteTimeout, err = getEnvDurationSafe("SERVER_WRITE_TIMEOUT", 15*time.Second, false)
	if err != nil {
		return config, fmt.Errorf("server write timeout config error: %w", err)
	}

	config.OAuth.ClientID, err = getEnvStringSafe("CLIENT_ID", "", true)
	if err != nil {
		return config, fmt.Errorf("client id config error: %w", err)
	}

	config.OAuth.ClientSecret, err = getEnvStringSafe("CLIENT_SECRET", "", true)
	if err != nil {
		return config, fmt.Errorf("client secret config error: %w", err)
	}

	config.OAuth.RedirectURI, err = getEnvStringSafe("REDIRECT_URI", "", true)
	if err != nil {
		return config, fmt.Errorf("redirect uri config error: %w", err)
	}

	config.OAuth.AuthURL, err = getEnvStringSafe("HUBSPOT_AUTH_URL", "https://app.hubspot.com/oauth/authorize", false)
	if err != nil {
		return config, fmt.Errorf("auth url config error: %w", err)
	}

	config.OAuth.TokenURL, err = getEnvStringSafe("HUBSPOT_TOKEN_URL", "https://api.hubapi.com/oauth/v1/token", false)
	if err != nil {
		return config, fmt.Errorf("token url config error: %w", err)
	}

	config.HubSpot.APIURL, err = getEnvStringSafe("HUBSPOT_API_URL", "https://api.hubapi.com", false)
	if err != nil {
		return config, fmt.Errorf("api url config error: %w", err)
	}

	config.HubSpot.Backend, err = getEnvBackendSafe("GATEWAY_BACKEND", BackendRest)
	if err != nil {
		return config, fmt.Errorf("gateway backend config error: %w", err)
	}

	config.HubSpot.ClientTimeout, err = getEnvDurationSafe("HTTP_CLIENT_TIMEOUT", 10*time.Second, false)
	if err != nil {
		return config, fmt.Errorf("http client timeout config error: %w", err)
	}

	return config, nil
}

func getEnvStringSafe(key, defaultValue string, required bool) (string, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		if required {
			return "", fmt.Errorf("environment variable %s is required", key)
		}
		return defaultValue, nil
	}
	return value, nil
}

func getEnvIntSafe(key string, defaultValue int, required bool) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		if required {
			return 0, fmt.Errorf("environment variable %s is required", key)
		}
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvDurationSafe(key string, defaultValue time.Duration, required bool) (time.Duration, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		if required {
			return 0, fmt.Errorf("environment variable %s is required", key)
		}
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a valid duration: %w", key, err)
	}
	return value, nil
}

func getEnvBackendSafe(key string, defaultValue GatewayBackend) (GatewayBackend, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	backend := GatewayBackend(value)
	if !backend.IsValid() {
		return "", fmt.Errorf("environment variable %s has invalid value: %s", key, value)
	}
	return backend, nil
}
