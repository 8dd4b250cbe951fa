package crypto

import (
	"strings"
	"testing"

	"github.com/regform/regform-go/internal/form"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		wantErr error
	}{
		{name: "default options", opts: DefaultOptions()},
		{
			name: "all classes, long",
			opts: GeneratorOptions{Length: 64, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
		},
		{name: "uppercase only", opts: GeneratorOptions{Length: 16, Uppercase: true}},
		{name: "symbols only", opts: GeneratorOptions{Length: 16, Symbols: true}},
		{
			name: "minimum length",
			opts: GeneratorOptions{Length: MinLength, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
		},
		{name: "maximum length", opts: GeneratorOptions{Length: MaxLength, Lowercase: true}},
		{
			name:    "below policy length",
			opts:    GeneratorOptions{Length: 8, Uppercase: true, Lowercase: true},
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "length too long",
			opts:    GeneratorOptions{Length: 200, Uppercase: true},
			wantErr: ErrLengthTooLong,
		},
		{
			name:    "no character types",
			opts:    GeneratorOptions{Length: 16},
			wantErr: ErrNoCharacterTypes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.opts)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if got != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(got) != tt.opts.Length {
				t.Errorf("Generate() length = %d, want %d", len(got), tt.opts.Length)
			}
		})
	}
}

func TestGenerateMeetsRegistrationPolicy(t *testing.T) {
	for i := 0; i < 50; i++ {
		pw, err := Generate(DefaultOptions())
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if !form.MeetsPolicy(pw) {
			t.Errorf("generated password %q fails policy: %v", pw, form.CheckRules(pw))
		}
	}
}

func TestGenerateSingleClass(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		charset string
	}{
		{"uppercase", GeneratorOptions{Length: 32, Uppercase: true}, uppercaseChars},
		{"lowercase", GeneratorOptions{Length: 32, Lowercase: true}, lowercaseChars},
		{"numbers", GeneratorOptions{Length: 32, Numbers: true}, numberChars},
		{"symbols", GeneratorOptions{Length: 32, Symbols: true}, symbolChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range pw {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains %q outside %q", ch, tt.charset)
				}
			}
		})
	}
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		pw, err := Generate(DefaultOptions())
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[pw] {
			t.Errorf("duplicate password generated: %q", pw)
		}
		seen[pw] = true
	}
}
