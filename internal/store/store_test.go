package store

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umenyi-bryan/Hackarena/internal/random"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(random.NewSeeded(1), 16)
	require.NoError(t, err)
	return s
}

func TestSeed(t *testing.T) {
	s := newTestStore(t)

	c := s.Counts()
	assert.Equal(t, 4, c.Users)
	assert.Equal(t, 0, c.Online)
	assert.Equal(t, 5, c.Games)
	assert.Equal(t, 0, c.Messages)

	admin, ok := s.User("admin")
	require.True(t, ok)
	assert.Equal(t, 1500, admin.Points)
	assert.Equal(t, 99, admin.Level)

	assert.Len(t, s.Leaderboard(100), 10)
}

func TestRegisterAnonymousUser(t *testing.T) {
	s := newTestStore(t)

	a := s.RegisterAnonymousUser()
	b := s.RegisterAnonymousUser()

	assert.Len(t, a.ID, 32)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Username, b.Username)
	assert.True(t, strings.HasPrefix(a.Username, "ghost_"))
	assert.Len(t, strings.TrimPrefix(a.Username, "ghost_"), 8)
	assert.Equal(t, 0, a.Points)
	assert.Equal(t, AnonymousRank, a.Rank)
	assert.Equal(t, 1, a.Level)

	got, ok := s.User(a.ID)
	require.True(t, ok)
	assert.Equal(t, a.Username, got.Username)
	assert.Equal(t, []string{a.Username, b.Username}, s.OnlineUsers(20))
	assert.Equal(t, 6, s.Counts().Users)
}

func TestRegisterAnonymousUserWithCryptoSource(t *testing.T) {
	s, err := New(random.NewCrypto(), 4)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		u := s.RegisterAnonymousUser()
		require.False(t, seen[u.ID], "duplicate session id %s", u.ID)
		seen[u.ID] = true
	}
}

func TestAwardPoints(t *testing.T) {
	s := newTestStore(t)
	u := s.RegisterAnonymousUser()

	assert.True(t, s.AwardPoints(u.ID, 50))
	assert.True(t, s.AwardPoints(u.ID, 25))
	got, _ := s.User(u.ID)
	assert.Equal(t, 75, got.Points)
}

func TestAwardPointsUnknownUserIsNoop(t *testing.T) {
	s := newTestStore(t)
	before := s.Counts()

	assert.NotPanics(t, func() {
		assert.False(t, s.AwardPoints("nobody", 1000))
	})
	assert.Equal(t, before, s.Counts())
	_, ok := s.User("nobody")
	assert.False(t, ok)
}

func TestLeaderboardIsDecoupledFromUsers(t *testing.T) {
	s := newTestStore(t)
	top := s.Leaderboard(3)

	s.AwardPoints("admin", 100000)
	s.AwardPoints("netrunner", 5000)

	assert.Equal(t, top, s.Leaderboard(3))
	assert.Equal(t, "admin", top[0].Username)
	assert.Equal(t, 1500, top[0].Points)
	assert.Equal(t, "ghost_1337", top[1].Username)
	assert.Equal(t, "crypto_master", top[2].Username)
}

func TestLeaderboardLimits(t *testing.T) {
	s := newTestStore(t)

	assert.Len(t, s.Leaderboard(0), 0)
	assert.Len(t, s.Leaderboard(-5), 0)
	assert.Len(t, s.Leaderboard(1000), 10)
}

func TestAppendMessageTrimsToCapacity(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 105; i++ {
		s.AppendMessage("#general", Message{ID: fmt.Sprint(i), Message: fmt.Sprintf("msg %d", i), Room: "#general"})
	}

	msgs := s.Messages("#general", 1000)
	require.Len(t, msgs, MaxRoomMessages)
	for i, m := range msgs {
		assert.Equal(t, fmt.Sprintf("msg %d", i+5), m.Message)
	}
	assert.Equal(t, MaxRoomMessages, s.Counts().Messages)
}

func TestMessagesLimitAndMissingRoom(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 10; i++ {
		s.AppendMessage("#ctf", Message{Message: fmt.Sprint(i)})
	}

	last := s.Messages("#ctf", 3)
	require.Len(t, last, 3)
	assert.Equal(t, "7", last[0].Message)
	assert.Equal(t, "9", last[2].Message)

	all := s.Messages("#ctf", 0)
	require.Len(t, all, 10)
	assert.Equal(t, "0", all[0].Message)
	assert.Empty(t, s.Messages("#ctf", -1))
	assert.Empty(t, s.Messages("#nowhere", 0))
	assert.NotNil(t, s.Messages("#nowhere", 50))
	assert.Empty(t, s.Messages("#nowhere", 50))
}

func TestRoomsAreEvictedLeastRecentlyWritten(t *testing.T) {
	s, err := New(random.NewSeeded(1), 2)
	require.NoError(t, err)

	s.AppendMessage("#a", Message{Message: "a"})
	s.AppendMessage("#b", Message{Message: "b"})
	s.AppendMessage("#a", Message{Message: "a2"})
	s.AppendMessage("#c", Message{Message: "c"})

	assert.Len(t, s.Messages("#a", 10), 2)
	assert.Empty(t, s.Messages("#b", 10))
	assert.Len(t, s.Messages("#c", 10), 1)
}

func TestGames(t *testing.T) {
	s := newTestStore(t)

	games := s.Games()
	require.Len(t, games, 5)
	assert.Equal(t, "password_cracker", games[0].ID)
	assert.Equal(t, "ctf", games[4].ID)

	g, ok := s.Game("network_scanner")
	require.True(t, ok)
	assert.Equal(t, 100, g.Points)

	_, ok = s.Game("nonexistent")
	assert.False(t, ok)
}
