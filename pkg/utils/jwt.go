package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// ShareClaims scopes a token to a single saved plan. Share links carry one of
// these so a plan can be fetched without any account.
type ShareClaims struct {
	PlanCode string `json:"plan_code"`
	jwt.RegisteredClaims
}

func CreateShareToken(planCode string) (string, error) {
	claims := &ShareClaims{
		PlanCode: planCode,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateShareToken(tokenString string) (*ShareClaims, error) {
	claims := &ShareClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil || !token.Valid {
		return nil, ErrShareTokenInvalid
	}

	return claims, nil
}
