package config

import (
	"fmt"
	"os"
)

// Config contiene la configuración de la aplicación leída del entorno
type Config struct {
	ServerPort   string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	AllowOrigins string
}

// LoadConfig carga la configuración desde variables de entorno con
// valores por defecto para desarrollo local
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "3000"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", ""),
		DBName:       getEnv("DB_NAME", "people_manager"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("la variable de entorno DB_PASSWORD es requerida")
	}

	return cfg, nil
}

// GetDBConnString arma el connection string de Postgres
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost,
		c.DBPort,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBSSLMode,
	)
}

// getEnv lee una variable de entorno con un valor por defecto
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
