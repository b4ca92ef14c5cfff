package crypto

import (
	"errors"
	"testing"
)

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestSourcesRejectInvalidBounds(t *testing.T) {
	chacha, err := NewChaChaSource()
	if err != nil {
		t.Fatalf("NewChaChaSource() unexpected error: %v", err)
	}
	fast, err := NewFastSource()
	if err != nil {
		t.Fatalf("NewFastSource() unexpected error: %v", err)
	}

	sources := map[string]Source{
		"crypto": CryptoSource{},
		"chacha": chacha,
		"fast":   fast,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{0, -1} {
				if _, err := src.Intn(n); !errors.Is(err, ErrInvalidBound) {
					t.Errorf("Intn(%d) error = %v, want %v", n, err, ErrInvalidBound)
				}
			}
			for i := 0; i < 1000; i++ {
				v, err := src.Intn(94)
				if err != nil {
					t.Fatalf("Intn() unexpected error: %v", err)
				}
				if v < 0 || v >= 94 {
					t.Fatalf("Intn(94) = %d out of range", v)
				}
			}
			if v, err := src.Intn(1); err != nil || v != 0 {
				t.Errorf("Intn(1) = %d, %v, want 0, nil", v, err)
			}
		})
	}
}

func TestCryptoSourceReaderError(t *testing.T) {
	errBoom := errors.New("entropy unavailable")
	src := CryptoSource{Reader: errReader{err: errBoom}}

	if _, err := src.Intn(10); !errors.Is(err, errBoom) {
		t.Errorf("Intn() error = %v, want %v", err, errBoom)
	}
}

func TestChaChaSourceFromKey(t *testing.T) {
	if _, err := NewChaChaSourceFromKey(make([]byte, 16)); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("NewChaChaSourceFromKey(short key) error = %v, want %v", err, ErrInvalidKey)
	}

	a, err := NewChaChaSourceFromKey(testKey(9))
	if err != nil {
		t.Fatalf("NewChaChaSourceFromKey() unexpected error: %v", err)
	}
	b, err := NewChaChaSourceFromKey(testKey(9))
	if err != nil {
		t.Fatalf("NewChaChaSourceFromKey() unexpected error: %v", err)
	}
	c, err := NewChaChaSourceFromKey(testKey(10))
	if err != nil {
		t.Fatalf("NewChaChaSourceFromKey() unexpected error: %v", err)
	}

	same, differ := true, false
	for i := 0; i < 64; i++ {
		va, _ := a.Intn(1 << 20)
		vb, _ := b.Intn(1 << 20)
		vc, _ := c.Intn(1 << 20)
		if va != vb {
			same = false
		}
		if va != vc {
			differ = true
		}
	}
	if !same {
		t.Error("same key produced different sequences")
	}
	if !differ {
		t.Error("different keys produced identical sequences")
	}
}

func TestFastSourceSeedIsDeterministic(t *testing.T) {
	a := NewFastSourceSeed(11)
	b := NewFastSourceSeed(11)
	for i := 0; i < 32; i++ {
		va, _ := a.Intn(1000)
		vb, _ := b.Intn(1000)
		if va != vb {
			t.Fatalf("draw %d: %d != %d", i, va, vb)
		}
	}
}
