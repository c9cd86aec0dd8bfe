package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/config"
)

// VerifySessionToken parses a session token issued by the identity
// provider and returns the external identity id from its subject claim.
// No tokens are minted here; sign-in lives entirely with the provider.
func VerifySessionToken(tokenString string) (string, error) {
	jwtToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.ClerkJWTSecret), nil
	})
	if err != nil {
		return "", err
	}

	if !jwtToken.Valid {
		return "", errors.New("token invalid")
	}

	sub, err := jwtToken.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("token missing subject")
	}

	return sub, nil
}
