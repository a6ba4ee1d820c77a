package config

import "github.com/spf13/viper"

type Config struct {
	Env          string `mapstructure:"APP_ENV"`
	HTTPPort     string `mapstructure:"HTTP_PORT"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	Migrate      bool   `mapstructure:"APP_MIGRATE"`
	RateRPS      int    `mapstructure:"RATE_RPS"`
	SeedDemoData bool   `mapstructure:"SEED_DEMO_DATA"`
}

// Load reads configuration from the environment. An empty DATABASE_URL
// selects the in-memory stores.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("APP_MIGRATE", false)
	v.SetDefault("RATE_RPS", 100)
	v.SetDefault("SEED_DEMO_DATA", false)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
