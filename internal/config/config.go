package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	DatabaseURL string
	DBMaxConns  int

	StoreName string
	// Timezone whose calendar decides "today" for promotion weekdays; the
	// weekday is computed once per request at the boundary.
	TZName string

	RedisAddr    string
	KafkaBrokers []string

	// Device file or spool the kitchen printer listens on; empty disables
	// automatic ticket printing.
	PrinterDevice string
}

func Load() Config {
	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		HTTPAddr: get("HTTP_ADDR", ":8080"),

		DatabaseURL: get("DATABASE_URL", ""),
		DBMaxConns:  getInt("DB_MAX_CONNS", 10),

		StoreName: get("STORE_NAME", "A Casa da Pizza"),
		TZName:    get("TZ_NAME", "America/Sao_Paulo"),

		RedisAddr:    get("REDIS_ADDR", ""),
		KafkaBrokers: getList("KAFKA_BROKERS", nil),

		PrinterDevice: get("PRINTER_DEVICE", ""),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getList(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
