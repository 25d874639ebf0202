package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Issuer is the iss claim stamped on every credential
const Issuer = "cmms-backend"

// Claims represents the credential claims
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	ID    uint   `json:"id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a credential for the principal valid for ttl
func GenerateAccessToken(id uint, email, role, secret string, ttl time.Duration) (string, error) {
	return generateAt(time.Now(), id, email, role, secret, ttl)
}

func generateAt(now time.Time, id uint, email, role, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		Email: email,
		Role:  role,
		ID:    id,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAccessToken validates a credential and returns its claims
func ValidateAccessToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(Issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
