package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"

	"golang.org/x/crypto/chacha20"
	exprand "golang.org/x/exp/rand"
)

var (
	ErrInvalidBound = errors.New("random bound must be positive")
	ErrInvalidKey   = errors.New("chacha20 key must be 32 bytes")
)

// Source returns uniform integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use.
type CryptoSource struct {
	// Reader overrides crypto/rand.Reader when set.
	Reader io.Reader
}

// Intn returns a uniform value in [0, n). math/big rejects out-of-range
// samples, so the result carries no modulo bias.
func (s CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	r := s.Reader
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading secure random: %w", err)
	}
	return int(v.Int64()), nil
}

// ChaChaSource draws from a ChaCha20 keystream. It is not safe for
// concurrent use.
type ChaChaSource struct {
	cipher *chacha20.Cipher
	buf    [4]byte
}

// NewChaChaSource keys a ChaCha20 stream from crypto/rand.
func NewChaChaSource() (*ChaChaSource, error) {
	key := make([]byte, chacha20.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating chacha20 key: %w", err)
	}
	return NewChaChaSourceFromKey(key)
}

// NewChaChaSourceFromKey keys a ChaCha20 stream from key. The same key always
// yields the same sequence.
func NewChaChaSourceFromKey(key []byte) (*ChaChaSource, error) {
	if len(key) != chacha20.KeySize {
		return nil, ErrInvalidKey
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("creating chacha20 cipher: %w", err)
	}
	return &ChaChaSource{cipher: c}, nil
}

func (s *ChaChaSource) next() uint32 {
	s.buf = [4]byte{}
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint32(s.buf[:])
}

// Intn returns a uniform value in [0, n) using rejection sampling over 32-bit
// words.
func (s *ChaChaSource) Intn(n int) (int, error) {
	if n <= 0 || uint64(n) > math.MaxUint32 {
		return 0, ErrInvalidBound
	}
	bound := uint32(n)
	// 2^32 mod bound; words below it would bias the low residues.
	threshold := -bound % bound
	for {
		v := s.next()
		if v >= threshold {
			return int(v % bound), nil
		}
	}
}

// FastSource is a non-cryptographic PCG generator. It only decides the order
// of characters that were already drawn from a secure source and must never
// pick characters itself. It is not safe for concurrent use.
type FastSource struct {
	rng *exprand.Rand
}

// NewFastSource seeds a FastSource from crypto/rand.
func NewFastSource() (*FastSource, error) {
	var seed [8]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("seeding order source: %w", err)
	}
	return NewFastSourceSeed(binary.LittleEndian.Uint64(seed[:])), nil
}

// NewFastSourceSeed returns a FastSource with a fixed seed.
func NewFastSourceSeed(seed uint64) *FastSource {
	return &FastSource{rng: exprand.New(exprand.NewSource(seed))}
}

func (s *FastSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	return s.rng.Intn(n), nil
}
