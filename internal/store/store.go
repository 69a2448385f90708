package store

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/umenyi-bryan/Hackarena/internal/random"
)

const (
	// MaxRoomMessages bounds every room log; older messages are dropped.
	MaxRoomMessages = 100

	AnonymousRank = "👤 Ghost"
)

// Store holds all server state for the lifetime of the process.
type Store struct {
	mu sync.RWMutex

	users       map[string]*User
	games       []Game
	leaderboard []LeaderboardEntry
	rooms       *lru.Cache[string, []Message]

	online      map[string]struct{}
	onlineOrder []string

	rand random.Generator
	now  func() time.Time
}

// New builds a seeded store. maxRooms caps how many room logs are kept; the
// least recently written room is evicted beyond that.
func New(gen random.Generator, maxRooms int) (*Store, error) {
	rooms, err := lru.New[string, []Message](maxRooms)
	if err != nil {
		return nil, err
	}
	s := &Store{
		rooms:  rooms,
		online: make(map[string]struct{}),
		rand:   gen,
		now:    time.Now,
	}
	s.seed()
	return s, nil
}

// RegisterAnonymousUser mints a 128-bit session id and a ghost_ display name,
// stores a zero-point user and marks the name online.
func (s *Store) RegisterAnonymousUser() User {
	u := &User{
		ID:       s.rand.Hex(16),
		Username: "ghost_" + s.rand.Hex(4),
		Points:   0,
		Rank:     AnonymousRank,
		Level:    1,
		Created:  float64(s.now().UnixNano()) / 1e9,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	if _, ok := s.online[u.Username]; !ok {
		s.online[u.Username] = struct{}{}
		s.onlineOrder = append(s.onlineOrder, u.Username)
	}
	return *u
}

// AwardPoints adds delta to a user's points. Unknown ids are ignored.
func (s *Store) AwardPoints(userID string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return false
	}
	u.Points += delta
	return true
}

// User returns a copy of the user with the given id.
func (s *Store) User(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return User{}, false
	}
	return *u, true
}

// AppendMessage appends to the room's log, keeping only the newest
// MaxRoomMessages entries.
func (s *Store) AppendMessage(room string, msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log, _ := s.rooms.Get(room)
	log = append(log, msg)
	if len(log) > MaxRoomMessages {
		log = log[len(log)-MaxRoomMessages:]
	}
	s.rooms.Add(room, log)
}

// Messages returns up to the last limit messages of a room, oldest first.
// A limit of 0 returns the whole log; a negative limit returns nothing.
func (s *Store) Messages(room string, limit int) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log, ok := s.rooms.Peek(room)
	if !ok || limit < 0 {
		return []Message{}
	}
	if limit == 0 || limit > len(log) {
		limit = len(log)
	}
	out := make([]Message, limit)
	copy(out, log[len(log)-limit:])
	return out
}

// Leaderboard returns the first limit entries of the seeded table.
func (s *Store) Leaderboard(limit int) []LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		return []LeaderboardEntry{}
	}
	if limit > len(s.leaderboard) {
		limit = len(s.leaderboard)
	}
	out := make([]LeaderboardEntry, limit)
	copy(out, s.leaderboard[:limit])
	return out
}

// Games returns the catalog in seeded order.
func (s *Store) Games() []Game {
	out := make([]Game, len(s.games))
	copy(out, s.games)
	return out
}

// Game looks up a catalog entry.
func (s *Store) Game(id string) (Game, bool) {
	for _, g := range s.games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// OnlineUsers returns up to limit online names in login order.
func (s *Store) OnlineUsers(limit int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit > len(s.onlineOrder) {
		limit = len(s.onlineOrder)
	}
	if limit <= 0 {
		return []string{}
	}
	out := make([]string, limit)
	copy(out, s.onlineOrder[:limit])
	return out
}

// Counts reports the current table sizes.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := Counts{
		Users:  len(s.users),
		Online: len(s.online),
		Games:  len(s.games),
	}
	for _, room := range s.rooms.Keys() {
		if log, ok := s.rooms.Peek(room); ok {
			c.Messages += len(log)
		}
	}
	return c
}
