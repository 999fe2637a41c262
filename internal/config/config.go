package config

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	SQLitePath string

	RedisAddr string
	RedisDB   int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:    getenv("APP_PORT", "8080"),
		SQLitePath: getenv("SQLITE_PATH", "loantrack.db"),
		RedisAddr:  getenv("REDIS_ADDR", "localhost:6379"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.SQLitePath == "" {
		return errors.New("missing SQLITE_PATH")
	}
	if c.RedisAddr == "" {
		return errors.New("missing REDIS_ADDR")
	}
	return nil
}
