package game

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/umenyi-bryan/Hackarena/internal/random"
	"github.com/umenyi-bryan/Hackarena/internal/store"
)

const (
	PasswordCracker = "password_cracker"
	NetworkScanner  = "network_scanner"

	crackerPlaintext = "hackarena123"
	crackerHint      = "Contains 'hackarena' and numbers"
)

var ErrGameNotFound = errors.New("game not found")

type Service struct {
	store *store.Store
	rand  random.Generator
	now   func() time.Time
}

func NewService(s *store.Store, gen random.Generator) *Service {
	return &Service{store: s, rand: gen, now: time.Now}
}

// Catalog lists every playable game.
func (s *Service) Catalog() CatalogResponse {
	games := s.store.Games()
	return CatalogResponse{Status: "success", Games: games, TotalGames: len(games)}
}

// Exists reports whether gameID is in the catalog.
func (s *Service) Exists(gameID string) bool {
	_, ok := s.store.Game(gameID)
	return ok
}

// StartGame issues a fresh session for a catalog game.
func (s *Service) StartGame(gameID string) (*Session, error) {
	if !s.Exists(gameID) {
		return nil, fmt.Errorf("start %q: %w", gameID, ErrGameNotFound)
	}

	sess := &Session{
		ID:      s.rand.UUID(),
		Game:    gameID,
		Started: float64(s.now().UnixNano()) / 1e9,
	}

	switch gameID {
	case PasswordCracker:
		sum := md5.Sum([]byte(crackerPlaintext))
		sess.Challenge = &Challenge{Hash: hex.EncodeToString(sum[:]), Hint: crackerHint}
	case NetworkScanner:
		sess.Network = fmt.Sprintf("10.0.%d.0/24", s.rand.Intn(255)+1)
	}

	return sess, nil
}

// CompleteGame credits score to the user named by id, if any. The score is
// taken at face value and no matching StartGame is required.
func (s *Service) CompleteGame(id string, score int) CompleteResponse {
	if id != "" {
		s.store.AwardPoints(id, score)
	}
	return CompleteResponse{Status: "success", Score: score, Message: "Game completed!"}
}
