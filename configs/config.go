package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins []string

	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	SenderEmail string

	PhonePeMerchantID  string
	PhonePeSaltKey     string
	PhonePeSaltIndex   string
	PhonePeBaseURL     string
	PhonePeRedirectURL string
	PhonePeCallbackURL string

	// When true, gateway failures fall back to a deterministic mock
	// response instead of surfacing to the caller. Dev/test only.
	PaymentMockFallback bool

	LogFile string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "hmx.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,

		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174")),

		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    smtpPort,
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASS"),
		SenderEmail: getEnv("SENDER_EMAIL", "support@hmxfpvtours.com"),

		PhonePeMerchantID:  getEnv("PHONEPE_MERCHANT_ID", "PGTESTPAYUAT"),
		PhonePeSaltKey:     getEnv("PHONEPE_SALT_KEY", "099eb0cd-02cf-4e2a-8aca-3e6c6aff0399"),
		PhonePeSaltIndex:   getEnv("PHONEPE_SALT_INDEX", "1"),
		PhonePeBaseURL:     getEnv("PHONEPE_BASE_URL", "https://api-preprod.phonepe.com/apis/pg-sandbox"),
		PhonePeRedirectURL: getEnv("PHONEPE_REDIRECT_URL", "http://localhost:5173/payment/callback"),
		PhonePeCallbackURL: getEnv("PHONEPE_CALLBACK_URL", "http://localhost:8000/api/payment/callback"),

		PaymentMockFallback: getEnv("PAYMENT_MOCK", "true") == "true",

		LogFile: getEnv("LOG_FILE", "logs/server.log"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
