package security

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/username/chainfolio/backend/src/config"
)

type AuthService struct {
	APISecret string
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{
		APISecret: secret,
	}
}

// VerifySharedSecret checks the caller-presented secret against the
// configured one in constant time.
func (a *AuthService) VerifySharedSecret(presented string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(a.APISecret)) == 1
}

func (a *AuthService) GenerateToken(subject string) (string, error) {
	if config.Cfg == nil {
		return "", errors.New("configuration not loaded, cannot determine token expiry")
	}
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(config.Cfg.TokenExpiry).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.APISecret))
}

func (a *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.APISecret), nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		sub, ok := claims["sub"].(string)
		if !ok {
			return "", errors.New("invalid token: 'sub' claim missing or not a string")
		}
		return sub, nil
	}

	return "", errors.New("invalid token")
}
