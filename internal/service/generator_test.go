package service

import (
	"errors"
	"testing"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if len(resp.Classes) != 4 {
		t.Errorf("expected 4 classes, got %v", resp.Classes)
	}
	if resp.Passwords != nil {
		t.Errorf("expected no batch for a single password, got %v", resp.Passwords)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
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
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_LengthClamped(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantLen int
	}{
		{"too short", 3, crypto.MinLength},
		{"negative", -10, crypto.MinLength},
		{"too long", 200, crypto.MaxLength},
		{"in range", 20, 20},
	}

	svc := NewGeneratorService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Generate(model.GenerateRequest{Length: tt.length})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Length != tt.wantLen {
				t.Errorf("expected length %d, got %d", tt.wantLen, resp.Length)
			}
		})
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, crypto.ErrNoClassSelected) {
		t.Fatalf("expected ErrNoClassSelected, got %v", err)
	}
}

func TestGenerate_Count(t *testing.T) {
	svc := NewGeneratorService()

	resp, err := svc.Generate(model.GenerateRequest{Count: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Passwords) != 5 {
		t.Fatalf("expected 5 passwords, got %d", len(resp.Passwords))
	}
	if resp.Password != resp.Passwords[0] {
		t.Errorf("expected Password to be the first of the batch")
	}

	for _, count := range []int{-1, MaxCount + 1} {
		if _, err := svc.Generate(model.GenerateRequest{Count: count}); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("count %d: expected ErrInvalidCount, got %v", count, err)
		}
	}
}

func TestGenerate_InjectedGenerator(t *testing.T) {
	content, err := crypto.NewChaChaSourceFromKey(make([]byte, 32))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc := NewGeneratorServiceWith(crypto.Generator{Content: content, Order: crypto.NewFastSourceSeed(1)})

	resp, err := svc.Generate(model.GenerateRequest{Length: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 12 {
		t.Errorf("expected length 12, got %d", resp.Length)
	}
}

func TestSelectionFromRequest(t *testing.T) {
	sel := SelectionFromRequest(model.GenerateRequest{Numbers: boolPtr(false)})
	if sel.Length != crypto.DefaultLength {
		t.Errorf("expected default length, got %d", sel.Length)
	}
	want := crypto.NewClassSet(crypto.Upper, crypto.Lower, crypto.Symbol)
	if sel.Classes != want {
		t.Errorf("expected classes %v, got %v", want.Names(), sel.Classes.Names())
	}
}

func TestCharsets(t *testing.T) {
	resp := NewGeneratorService().Charsets()
	if len(resp.Charsets) != 4 {
		t.Fatalf("expected 4 charsets, got %d", len(resp.Charsets))
	}
	if resp.Charsets[0].Name != "uppercase" || resp.Charsets[3].Name != "symbols" {
		t.Errorf("unexpected charset order: %+v", resp.Charsets)
	}
	if resp.Charsets[2].Size != 10 {
		t.Errorf("expected 10 digits, got %d", resp.Charsets[2].Size)
	}
	if resp.MinLength != 8 || resp.MaxLength != 64 {
		t.Errorf("unexpected bounds %d..%d", resp.MinLength, resp.MaxLength)
	}
}
