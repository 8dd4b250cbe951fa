package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/regform/regform-go/internal/form"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = form.SpecialChars

	// MinLength matches the registration form's length rule so that a
	// generated password with every class enabled always meets the policy.
	MinLength     = form.MinPasswordLength
	MaxLength     = 128
	DefaultLength = 16
)

var (
	ErrLengthTooShort   = errors.New("password length must be at least 12")
	ErrLengthTooLong    = errors.New("password length must be at most 128")
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns 16 characters with every class enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

func (o GeneratorOptions) charsets() []string {
	var sets []string
	if o.Uppercase {
		sets = append(sets, uppercaseChars)
	}
	if o.Lowercase {
		sets = append(sets, lowercaseChars)
	}
	if o.Numbers {
		sets = append(sets, numberChars)
	}
	if o.Symbols {
		sets = append(sets, symbolChars)
	}
	return sets
}

// Generate creates a random password from crypto/rand. Every selected class
// appears at least once.
func Generate(opts GeneratorOptions) (string, error) {
	switch {
	case opts.Length < MinLength:
		return "", ErrLengthTooShort
	case opts.Length > MaxLength:
		return "", ErrLengthTooLong
	}

	sets := opts.charsets()
	if len(sets) == 0 {
		return "", ErrNoCharacterTypes
	}

	var pool string
	for _, s := range sets {
		pool += s
	}

	result := make([]byte, opts.Length)
	for i := range result {
		charset := pool
		if i < len(sets) {
			charset = sets[i]
		}
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
