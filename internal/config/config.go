package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds the analyze defaults. Values come from a YAML config file
// and/or TAGSTAT_* environment variables; explicit command-line flags always
// win over both.
type Config struct {
	Output    string `yaml:"output" env:"TAGSTAT_OUTPUT" env-default:"mastodon_hashtags.csv"`
	Top       int    `yaml:"top" env:"TAGSTAT_TOP" env-default:"20"`
	Encoding  string `yaml:"encoding" env:"TAGSTAT_ENCODING" env-default:"utf-8-sig"`
	Delimiter string `yaml:"delimiter" env:"TAGSTAT_DELIMITER" env-default:","`
}

// Load reads configuration from the environment, layered under the YAML file
// at path when one is given. A .env file in the working directory is honored
// for development runs.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
