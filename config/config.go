package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresURL string
	MongoURL    string
	DBType      string
	Port        string

	// Cloudflare R2 (POD images and exported PDFs)
	R2Bucket    string
	R2AccountID string
	R2PublicURL string

	PDFSavePath string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL: os.Getenv("POSTGRES_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),
		DBType:      os.Getenv("DB_TYPE"),
		Port:        os.Getenv("PORT"),
		R2Bucket:    os.Getenv("R2_BUCKET"),
		R2AccountID: os.Getenv("R2_ACCOUNT_ID"),
		R2PublicURL: os.Getenv("R2_PUBLIC_URL"),
		PDFSavePath: os.Getenv("PDF_SAVE_PATH"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.PDFSavePath == "" {
		cfg.PDFSavePath = "./pdfs"
	}
	return cfg
}
