package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndParseConfirmation(t *testing.T) {
	token, err := IssueConfirmation("sub-1", "Ada", "ada@example.com", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueConfirmation() unexpected error: %v", err)
	}

	claims, err := ParseConfirmation(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseConfirmation() unexpected error: %v", err)
	}
	if claims.Subject != "sub-1" {
		t.Errorf("Subject = %q, want sub-1", claims.Subject)
	}
	if claims.Name != "Ada" || claims.Email != "ada@example.com" {
		t.Errorf("claims = %q/%q, want Ada/ada@example.com", claims.Name, claims.Email)
	}
}

func TestParseConfirmationRejects(t *testing.T) {
	good, err := IssueConfirmation("sub-1", "Ada", "ada@example.com", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueConfirmation() unexpected error: %v", err)
	}
	expired, err := IssueConfirmation("sub-1", "Ada", "ada@example.com", "right-secret", -time.Minute)
	if err != nil {
		t.Fatalf("IssueConfirmation() unexpected error: %v", err)
	}

	sign := func(issuer, audience string) string {
		claims := ConfirmationClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				Audience:  jwt.ClaimStrings{audience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("right-secret"))
		if err != nil {
			t.Fatalf("SignedString() unexpected error: %v", err)
		}
		return s
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"garbage", "not-a-token", "right-secret"},
		{"wrong secret", good, "wrong-secret"},
		{"expired", expired, "right-secret"},
		{"wrong issuer", sign("someone-else", tokenAudience), "right-secret"},
		{"wrong audience", sign(tokenIssuer, "other-api"), "right-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfirmation(tt.token, tt.secret); err != ErrInvalidToken {
				t.Errorf("ParseConfirmation() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
