package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig menampung seluruh konfigurasi runtime (secret, TTL token,
// direktori upload, ukuran halaman). Diisi sekali lewat LoadEnv lalu
// di-inject ke route/controller — tidak ada global mutable.
type AppConfig struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
	UploadDir      string
	CoursePageSize int
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() *AppConfig {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	cfg := &AppConfig{
		JWTSecret:      GetEnv("JWT_SECRET"),
		AccessTokenTTL: 24 * time.Hour,
		UploadDir:      GetEnv("UPLOAD_DIR", "./uploads"),
		CoursePageSize: 10,
	}

	if ttl := GetEnv("ACCESS_TOKEN_TTL_HOURS"); ttl != "" {
		if n, err := strconv.Atoi(ttl); err == nil && n > 0 {
			cfg.AccessTokenTTL = time.Duration(n) * time.Hour
		}
	}
	if size := GetEnv("COURSE_PAGE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil && n > 0 {
			cfg.CoursePageSize = n
		}
	}

	if cfg.JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
