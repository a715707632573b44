package config

import (
	"os"
	"strings"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	AIBaseURL          string
	AIApiKey           string
	ImageGenBaseURL    string
	ImageGenApiKey     string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	PostgresURI        string
	RedisURI           string
	FrontendURL        string
	MailBaseURL        string
	MailApiKey         string
	MailFromAddress    string
	AdminEmails        []string
	R2                 R2
	SecretKey          string
	CookieName         string
}

func LoadConfig() *Config {
	return &Config{
		AIBaseURL:          getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
		AIApiKey:           getEnv("AI_API_KEY", ""),
		ImageGenBaseURL:    getEnv("IMAGEGEN_BASE_URL", ""),
		ImageGenApiKey:     getEnv("IMAGEGEN_API_KEY", ""),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", "http://localhost:3000/login/callback"),
		PostgresURI:        getEnv("POSTGRES_URI", ""),
		RedisURI:           getEnv("REDIS_URI", "127.0.0.1:6379"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
		MailBaseURL:        getEnv("MAIL_BASE_URL", "https://api.resend.com"),
		MailApiKey:         getEnv("MAIL_API_KEY", ""),
		MailFromAddress:    getEnv("MAIL_FROM_ADDRESS", "EchoFlux <hello@echoflux.ai>"),
		AdminEmails:        splitEnv("ADMIN_EMAILS"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		SecretKey:  getEnv("SECRET_KEY", ""),
		CookieName: getEnv("COOKIE_NAME", "echoflux_session"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitEnv(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
