package config

import "os"

type Config struct {
	Port           string
	BackendAPIURL  string
	JWTSecret      string
	RedisAddr      string
	CartCookieName string
}

func Load() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		BackendAPIURL:  getenv("BACKEND_API_URL", "http://localhost:9000/api"),
		JWTSecret:      getenv("JWT_SECRET", "dev-secret-please-change"),
		RedisAddr:      os.Getenv("REDIS_ADDR"), // empty disables the dashboard cache
		CartCookieName: getenv("CART_TOKEN_COOKIE", "edulike_cart_token"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
