package service

import (
	"errors"
	"testing"

	"github.com/regform/regform-go/internal/crypto"
	"github.com/regform/regform-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != crypto.DefaultLength {
		t.Errorf("expected length %d, got %d", crypto.DefaultLength, resp.Length)
	}
	if resp.Strength.Strength != "Strong" {
		t.Errorf("expected Strong default password, got %s (%+v)", resp.Strength.Strength, resp.Strength.Rules)
	}
	if !resp.Strength.Resolved {
		t.Error("expected default password to resolve the checklist")
	}
}

func TestGenerate_LettersOnlyIsFair(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in letters-only password", c)
		}
	}
	if resp.Strength.Satisfied != 3 || resp.Strength.Strength != "Fair" {
		t.Errorf("expected 3 rules / Fair, got %d / %s", resp.Strength.Satisfied, resp.Strength.Strength)
	}
}

func TestGenerate_Errors(t *testing.T) {
	svc := NewGeneratorService()

	tests := []struct {
		name string
		req  model.GenerateRequest
		want error
	}{
		{"too short", model.GenerateRequest{Length: 8}, crypto.ErrLengthTooShort},
		{"too long", model.GenerateRequest{Length: 200}, crypto.ErrLengthTooLong},
		{"no classes", model.GenerateRequest{
			Length:    16,
			Uppercase: boolPtr(false),
			Lowercase: boolPtr(false),
			Numbers:   boolPtr(false),
			Symbols:   boolPtr(false),
		}, crypto.ErrNoCharacterTypes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Generate(tt.req); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
