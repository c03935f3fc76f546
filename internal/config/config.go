package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DataPath          string
	DatabaseURL       string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	AuthSecret        string
	SessionTTLMinutes int
	SyncDelayMS       int
}

func Load() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	sessionTTL, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "720"))
	if err != nil || sessionTTL < 1 {
		sessionTTL = 720
	}
	syncDelay, err := strconv.Atoi(getEnv("SYNC_DELAY_MS", "2000"))
	if err != nil || syncDelay < 0 {
		syncDelay = 2000
	}

	return Config{
		DataPath:          getEnv("POS_DATA_PATH", defaultDataPath()),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           redisDB,
		AuthSecret:        strings.TrimSpace(os.Getenv("AUTH_SECRET")),
		SessionTTLMinutes: sessionTTL,
		SyncDelayMS:       syncDelay,
	}
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pos.db"
	}
	return home + "/.tokopos/pos.db"
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
