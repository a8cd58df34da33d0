package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort        string
	JWTSecret       string
	CORSOrigins     string
	ImageAPIKey     string // Görsel üretim API anahtarı (boşsa hep placeholder döner)
	ImageAPIURL     string
	PlaceholderBase string // Fallback görsel servisi kök adresi
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		CORSOrigins:     getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		ImageAPIKey:     getEnv("IMAGE_API_KEY", ""),
		ImageAPIURL:     getEnv("IMAGE_API_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-image:generateContent"),
		PlaceholderBase: getEnv("PLACEHOLDER_IMAGE_URL", "https://picsum.photos"),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.ImageAPIKey == "" {
		log.Println("[WARN] IMAGE_API_KEY tanımlı değil, ürün görselleri her zaman placeholder'dan gelecek.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
