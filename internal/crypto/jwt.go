package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "regform"
	tokenAudience = "regform-confirm"
)

var ErrInvalidToken = errors.New("invalid or expired confirmation token")

// ConfirmationClaims identify an accepted registration. Subject holds the
// submission id.
type ConfirmationClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IssueConfirmation signs a confirmation token for an accepted submission.
func IssueConfirmation(submissionID, name, email, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := ConfirmationClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   submissionID,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name:  name,
		Email: email,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseConfirmation validates a confirmation token and returns its claims.
func ParseConfirmation(tokenString, secret string) (*ConfirmationClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ConfirmationClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ConfirmationClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
