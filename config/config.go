package config

import (
	"log"
	"os"
)

// Helper untuk ambil environment variable dengan nilai default
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Untuk konfigurasi wajib (URL database, secret). Proses berhenti kalau belum diset.
func MustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		log.Fatalf("Environment variable %s wajib diisi", key)
	}
	return value
}
