package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	appName = "modelcatalog"

	defaultCatalogURL   = "https://api.venice.ai/api/v1/models"
	defaultQuoteURL     = "https://api.venice.ai/api/v1/video/quote"
	defaultCacheTTL     = 5 * time.Minute
	defaultFetchTimeout = 30 * time.Second
	defaultQuoteTimeout = 10 * time.Second
	defaultPort         = 47100
)

// Config holds the runtime configuration for the catalog service.
type Config struct {
	CatalogURL   string        `json:"catalogUrl" mapstructure:"catalog_url"`
	QuoteURL     string        `json:"quoteUrl" mapstructure:"quote_url"`
	CacheTTL     time.Duration `json:"cacheTtl" mapstructure:"cache_ttl"`
	FetchTimeout time.Duration `json:"fetchTimeout" mapstructure:"fetch_timeout"`
	QuoteTimeout time.Duration `json:"quoteTimeout" mapstructure:"quote_timeout"`
	Port         int           `json:"port" mapstructure:"port"`
	Debug        bool          `json:"debug" mapstructure:"debug"`
}

// Load reads configuration from an optional file and MODELCATALOG_*
// environment variables, applying defaults for anything unset.
func Load(configPath string, debug bool) (*Config, error) {
	v := viper.New()
	configureViper(v, configPath)
	setDefaults(v, debug)

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; defaults and env cover
		// everything. An explicitly named file must exist.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && configPath != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func configureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(fmt.Sprintf(".%s", appName))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func setDefaults(v *viper.Viper, debug bool) {
	v.SetDefault("catalog_url", defaultCatalogURL)
	v.SetDefault("quote_url", defaultQuoteURL)
	v.SetDefault("cache_ttl", defaultCacheTTL)
	v.SetDefault("fetch_timeout", defaultFetchTimeout)
	v.SetDefault("quote_timeout", defaultQuoteTimeout)
	v.SetDefault("port", defaultPort)
	v.SetDefault("debug", debug)
}
