package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// fallbackURLs is used when no api_url is configured anywhere
var fallbackURLs = map[string]string{
	EnvDevelopment: "http://localhost:8080/api",
	EnvProduction:  "http://tasks-api:8080/api",
}

// ClientConfig is the resolved connection settings for the CLI
type ClientConfig struct {
	APIURL string
	Env    string
}

// LoadClientConfig resolves the API base URL: --api-url, then TASKS_API_URL,
// then api_url in the config file, then the fallback for the environment.
func LoadClientConfig(opts *RootOptions) (*ClientConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("TASKS")
	if err := v.BindEnv("api_url"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("env"); err != nil {
		return nil, err
	}
	v.SetDefault("env", EnvDevelopment)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	}

	if opts.APIURL != "" {
		v.Set("api_url", opts.APIURL)
	}
	if opts.Env != "" {
		v.Set("env", opts.Env)
	}

	cfg := &ClientConfig{
		APIURL: strings.TrimSpace(v.GetString("api_url")),
		Env:    strings.ToLower(strings.TrimSpace(v.GetString("env"))),
	}
	if cfg.APIURL != "" {
		return cfg, nil
	}

	url, ok := fallbackURLs[cfg.Env]
	if !ok {
		return nil, fmt.Errorf("unknown environment %q: must be %s or %s", cfg.Env, EnvDevelopment, EnvProduction)
	}
	cfg.APIURL = url
	return cfg, nil
}
