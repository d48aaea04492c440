package helper

import (
	"time"

	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/config"

	"github.com/golang-jwt/jwt/v4"
)

func GenerateToken(username string) (string, error) {
	expTime := time.Now().Add(time.Hour * 24)
	claims := &config.JWTClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "rekap-kelurahan",
			ExpiresAt: jwt.NewNumericDate(expTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWT_KEY)
}
