package config

import (
	"log"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

var JWT_KEY []byte

// LoadEnv dipanggil dari main sebelum server jalan.
// File .env opsional, variabel environment langsung juga dibaca.
func LoadEnv() {
	_ = godotenv.Load()

	key := os.Getenv("JWT_KEY")
	if key == "" {
		log.Fatal("JWT_KEY must be set")
	}
	JWT_KEY = []byte(key)
}

type JWTClaims struct {
	Username string
	jwt.RegisteredClaims
}
