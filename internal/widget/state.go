// Package widget holds the interactive generator state shared by the CLI and
// other front ends: the current selection, the last password and a short-lived
// status message.
package widget

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// StatusTTL is how long a status message stays visible.
const StatusTTL = 3 * time.Second

const (
	StatusGenerated   = "Password generated"
	StatusNoClass     = "Select at least one character set"
	StatusCopied      = "Copied to clipboard"
	StatusCopyFailed  = "Copy failed"
	StatusCleared     = "Cleared"
	statusGenerateErr = "Generation failed"
)

var (
	ErrNothingToCopy        = errors.New("no password to copy")
	ErrClipboardUnsupported = errors.New("no clipboard utility available")
)

// State is safe for concurrent use.
type State struct {
	mu       sync.Mutex
	gen      crypto.Generator
	now      func() time.Time
	sel      crypto.Selection
	password string
	status   string
	statusAt time.Time
}

// Option configures a State.
type Option func(*State)

// WithGenerator replaces the default crypto/rand backed generator.
func WithGenerator(gen crypto.Generator) Option {
	return func(s *State) { s.gen = gen }
}

// WithClock sets the clock used for status expiry.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// New returns a State with the default selection.
func New(opts ...Option) *State {
	s := &State{
		now: time.Now,
		sel: crypto.DefaultSelection(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetLength stores n clamped to the allowed range and returns the stored value.
func (s *State) SetLength(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Length = crypto.Clamp(n)
	return s.sel.Length
}

func (s *State) SetClass(c crypto.Class, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on {
		s.sel.Classes = s.sel.Classes.With(c)
	} else {
		s.sel.Classes = s.sel.Classes.Without(c)
	}
}

func (s *State) Selection() crypto.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

// Generate creates a new password from the current selection. On failure the
// previously displayed password is dropped.
func (s *State) Generate() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	password, err := s.gen.Generate(s.sel)
	if err != nil {
		s.password = ""
		if errors.Is(err, crypto.ErrNoClassSelected) {
			s.setStatus(StatusNoClass)
		} else {
			s.setStatus(statusGenerateErr)
		}
		return "", err
	}

	s.password = password
	s.setStatus(StatusGenerated)
	return password, nil
}

// Copy writes the current password to cb. A clipboard failure only changes
// the status; the password is kept.
func (s *State) Copy(ctx context.Context, cb Clipboard) error {
	s.mu.Lock()
	password := s.password
	s.mu.Unlock()

	if password == "" {
		return ErrNothingToCopy
	}

	err := cb.WriteText(ctx, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.setStatus(StatusCopyFailed)
		return fmt.Errorf("copying password: %w", err)
	}
	s.setStatus(StatusCopied)
	return nil
}

// Clear drops the current password.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.password = ""
	s.setStatus(StatusCleared)
}

// Reset restores the default selection and drops the password and status.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = crypto.DefaultSelection()
	s.password = ""
	s.status = ""
}

// Status returns the current status message, or "" once it has expired.
func (s *State) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != "" && s.now().Sub(s.statusAt) >= StatusTTL {
		s.status = ""
	}
	return s.status
}

func (s *State) Password() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.password
}

// CanCopy reports whether there is a password to copy.
func (s *State) CanCopy() bool {
	return s.Password() != ""
}

func (s *State) setStatus(msg string) {
	s.status = msg
	s.statusAt = s.now()
}
