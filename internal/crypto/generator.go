package crypto

import (
	"errors"
	"fmt"
)

var ErrNoClassSelected = errors.New("at least one character set must be selected")

// Generator binds the random sources used for a generation call.
// The zero value draws characters from crypto/rand and shuffles with a
// freshly seeded FastSource per call, and is safe for concurrent use.
type Generator struct {
	// Content picks every character. It must be cryptographically secure.
	Content Source
	// Order only shuffles positions. When nil a new FastSource is seeded for
	// each call.
	Order Source
}

// Generate creates a password for sel using the generator's sources.
func (g Generator) Generate(sel Selection) (string, error) {
	content := g.Content
	if content == nil {
		content = CryptoSource{}
	}

	order := g.Order
	if order == nil {
		fast, err := NewFastSource()
		if err != nil {
			return "", err
		}
		order = fast
	}

	return Generate(sel, content, order)
}

// Generate creates a password containing at least one character from each
// class in sel, filled from the pool of all enabled alphabets and shuffled.
//
// Characters come only from content; order is used for the shuffle alone.
// sel.Length is expected to be clamped by the caller. When it is smaller than
// the number of enabled classes every required character is still emitted, so
// the result is longer than requested.
func Generate(sel Selection, content, order Source) (string, error) {
	if sel.Classes.Empty() {
		return "", ErrNoClassSelected
	}

	classes := sel.Classes.List()
	remaining := max(0, sel.Length-len(classes))
	result := make([]byte, 0, len(classes)+remaining)

	// Guarantee at least one character from each selected class.
	for _, c := range classes {
		ch, err := randChar(c.Alphabet(), content)
		if err != nil {
			return "", fmt.Errorf("drawing %s character: %w", c, err)
		}
		result = append(result, ch)
	}

	// Fill the remaining positions from the full pool.
	sampled, err := Draw(sel.Classes.Pool(), remaining, content)
	if err != nil {
		return "", err
	}
	result = append(result, sampled...)

	if err := Shuffle(result, order); err != nil {
		return "", err
	}

	return string(result), nil
}

// Draw picks n independent characters from pool.
func Draw(pool string, n int, src Source) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		ch, err := randChar(pool, src)
		if err != nil {
			return nil, fmt.Errorf("drawing pool character: %w", err)
		}
		out[i] = ch
	}
	return out, nil
}

// Shuffle performs an in-place Fisher-Yates shuffle driven by src.
func Shuffle(data []byte, src Source) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return fmt.Errorf("shuffling: %w", err)
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

// randChar picks a random character from charset.
func randChar(charset string, src Source) (byte, error) {
	n, err := src.Intn(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}
