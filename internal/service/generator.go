package service

import (
	"errors"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const MaxCount = 20

var ErrInvalidCount = errors.New("count must be between 1 and 20")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen crypto.Generator
}

// NewGeneratorService creates a new GeneratorService using secure defaults.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// NewGeneratorServiceWith creates a GeneratorService around gen.
func NewGeneratorServiceWith(gen crypto.Generator) *GeneratorService {
	return &GeneratorService{gen: gen}
}

// Generate produces one or more passwords based on the given request.
// Length 0 selects the default; any other length is clamped to the allowed range.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	sel := SelectionFromRequest(req)

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxCount {
		return model.GenerateResponse{}, ErrInvalidCount
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := s.gen.Generate(sel)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		passwords = append(passwords, password)
	}

	resp := model.GenerateResponse{
		Password: passwords[0],
		Length:   len(passwords[0]),
		Classes:  sel.Classes.Names(),
	}
	if count > 1 {
		resp.Passwords = passwords
	}
	return resp, nil
}

// Charsets lists the selectable character classes.
func (s *GeneratorService) Charsets() model.CharsetsResponse {
	charsets := make([]model.Charset, len(crypto.Classes))
	for i, c := range crypto.Classes {
		charsets[i] = model.Charset{
			Name:     c.String(),
			Alphabet: c.Alphabet(),
			Size:     len(c.Alphabet()),
		}
	}
	return model.CharsetsResponse{
		Charsets:      charsets,
		MinLength:     crypto.MinLength,
		MaxLength:     crypto.MaxLength,
		DefaultLength: crypto.DefaultLength,
	}
}

// SelectionFromRequest applies defaults and clamping to req.
func SelectionFromRequest(req model.GenerateRequest) crypto.Selection {
	length := req.Length
	if length == 0 {
		length = crypto.DefaultLength
	}

	toggles := map[crypto.Class]*bool{
		crypto.Upper:  req.Uppercase,
		crypto.Lower:  req.Lowercase,
		crypto.Digit:  req.Numbers,
		crypto.Symbol: req.Symbols,
	}

	var classes crypto.ClassSet
	for c, p := range toggles {
		if boolOrDefault(p, true) {
			classes = classes.With(c)
		}
	}

	return crypto.Selection{
		Length:  crypto.Clamp(length),
		Classes: classes,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
