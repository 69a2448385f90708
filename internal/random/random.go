// Package random is the single source of randomness for ids, names and game
// payloads. Production code uses Crypto; tests use a Seeded generator so that
// outputs are reproducible.
package random

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	mrand "math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

// Generator mints random tokens.
type Generator interface {
	// Hex returns n random bytes hex-encoded (2n characters).
	Hex(n int) string
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// UUID returns a random (version 4) UUID string.
	UUID() string
}

// Crypto draws from crypto/rand.
type Crypto struct{}

func NewCrypto() Crypto { return Crypto{} }

func (Crypto) Hex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("random: crypto source failed: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func (Crypto) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("random: crypto source failed: " + err.Error())
	}
	return int(v.Int64())
}

func (Crypto) UUID() string {
	return uuid.NewString()
}

// Seeded is a deterministic generator backed by ChaCha8. Safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	src *mrand.ChaCha8
	rng *mrand.Rand
}

// NewSeeded returns a generator whose output depends only on seed.
func NewSeeded(seed uint64) *Seeded {
	var key [32]byte
	for i := 0; i < 8; i++ {
		key[i] = byte(seed >> (8 * i))
	}
	src := mrand.NewChaCha8(key)
	return &Seeded{src: src, rng: mrand.New(src)}
}

func (s *Seeded) Hex(n int) string {
	b := make([]byte, n)
	s.read(b)
	return hex.EncodeToString(b)
}

func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func (s *Seeded) UUID() string {
	id, err := uuid.NewRandomFromReader(readerFunc(func(p []byte) (int, error) {
		s.read(p)
		return len(p), nil
	}))
	if err != nil {
		panic("random: seeded uuid failed: " + err.Error())
	}
	return id.String()
}

func (s *Seeded) read(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.src.Read(p)
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }
