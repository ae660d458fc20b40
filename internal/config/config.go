package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Schedule struct {
		Path string `env:"PATH" envDefault:"schedule.json"`
	} `envPrefix:"ONCALL_SCHEDULE_"`
	Log struct {
		Level  string `env:"LEVEL" envDefault:"info"`
		Format string `env:"FORMAT" envDefault:"text"`
	} `envPrefix:"ONCALL_LOG_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
