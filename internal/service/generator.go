package service

import (
	"github.com/regform/regform-go/internal/crypto"
	"github.com/regform/regform-go/internal/form"
	"github.com/regform/regform-go/internal/model"
)

// GeneratorService suggests passwords that pass the registration policy.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request and rates it with
// the same evaluator the form uses.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.DefaultOptions()
	if req.Length != 0 {
		opts.Length = req.Length
	}
	opts.Uppercase = boolOrDefault(req.Uppercase, opts.Uppercase)
	opts.Lowercase = boolOrDefault(req.Lowercase, opts.Lowercase)
	opts.Numbers = boolOrDefault(req.Numbers, opts.Numbers)
	opts.Symbols = boolOrDefault(req.Symbols, opts.Symbols)

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: model.NewStrengthResponse(form.Evaluate(password)),
	}, nil
}

func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
