// Package config resolves runtime settings from an optional .env file,
// an optional config file and MERITBANK_-prefixed environment
// variables, in increasing order of precedence for the environment.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the CLI needs to run.
type Config struct {
	// BankDir is the directory holding balances.json and
	// transactions.json.
	BankDir string
	// KafkaBrokers, when non-empty, enables publishing of recorded
	// transactions.
	KafkaBrokers []string
	// KafkaTopic is the topic recorded transactions are published to.
	KafkaTopic string
	// DatabaseURL, when non-empty, enables the Postgres archive mirror.
	DatabaseURL string
}

// Load reads settings. cfgFile may be empty, in which case a
// .meritbank.yaml in the working directory is used if present.
func Load(cfgFile string) (*Config, error) {
	// A .env next to the binary is a developer convenience; absence is
	// not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MERITBANK")
	v.AutomaticEnv()

	v.SetDefault("bank_dir", "bank")
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_topic", "merit_transactions")
	v.SetDefault("database_url", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName(".meritbank")
		v.AddConfigPath(".")
		// Optional; only surface real read errors.
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	return &Config{
		BankDir:      v.GetString("bank_dir"),
		KafkaBrokers: splitBrokers(v.GetString("kafka_brokers")),
		KafkaTopic:   v.GetString("kafka_topic"),
		DatabaseURL:  v.GetString("database_url"),
	}, nil
}

func splitBrokers(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}
