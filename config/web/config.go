package config

import "github.com/ilyakaznacheev/cleanenv"

type Config struct {
	Port            int    `env:"PORT" env-default:"8080"`
	JWTSecret       string `env:"JWT_SECRET"`
	FreeTierLimit   int    `env:"FREE_TIER_LIMIT" env-default:"3"`
	Gemini          GeminiConfig
	SsoService      ServiceConfig `env-prefix:"SSO_"`
	MeetingsService ServiceConfig `env-prefix:"MEETINGS_"`
}

type GeminiConfig struct {
	APIKey  string `env:"GEMINI_API_KEY"`
	Model   string `env:"GEMINI_MODEL" env-default:"gemini-2.5-flash"`
	BaseURL string `env:"GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta"`
}

type ServiceConfig struct {
	Port int    `env:"PORT"`
	Url  string `env:"URL"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read environment variables: " + err.Error())
	}
	return &cfg
}
