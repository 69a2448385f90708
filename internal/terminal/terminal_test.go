package terminal

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteNormalizes(t *testing.T) {
	term := New()
	want := outputs["help"]

	for _, in := range []string{"help", "HELP", "  help  ", "\tHeLp\n"} {
		res := term.Execute(in)
		assert.Equal(t, want, res.Output, "input %q", in)
		assert.Equal(t, "help", res.Command)
	}
}

func TestExecuteCannedCommands(t *testing.T) {
	term := New()

	assert.Contains(t, term.Execute("ls").Output, "flag.txt")
	assert.Contains(t, term.Execute("Scan 10.0.0.0/24").Output, "Target Server")
	assert.Contains(t, term.Execute("crack 5F4DCC3B5AA765D61D8327DEB882CF99").Output, "Password: password")
	assert.Contains(t, term.Execute("decode secret.enc").Output, "HACKARENA_ULTIMATE_2024")
	assert.Contains(t, term.Execute("whoami").Output, "User: anonymous")
	assert.Equal(t, "", term.Execute("clear").Output)
}

func TestExecuteUnknown(t *testing.T) {
	term := New()

	res := term.Execute("foobar")
	assert.Equal(t, "Command not found: foobar\nType 'help' for available commands.", res.Output)

	// Arguments are not parsed: a different scan target misses.
	res = term.Execute("scan 192.168.0.0/16")
	assert.Equal(t, "Command not found: scan 192.168.0.0/16\nType 'help' for available commands.", res.Output)
}

func TestExecuteTimestamp(t *testing.T) {
	term := New()
	term.now = func() time.Time { return time.Unix(1700000000, 500000000) }

	assert.Equal(t, 1700000000.5, term.Execute("ls").Timestamp)
}

func TestHandleExecute(t *testing.T) {
	h := NewHandler(New(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	w := httptest.NewRecorder()
	h.Execute(w, httptest.NewRequest(http.MethodPost, "/api/terminal/execute", strings.NewReader(`{"command":"  WHOAMI "}`)))

	require.Equal(t, http.StatusOK, w.Code)
	var res Result
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, "whoami", res.Command)
	assert.Contains(t, res.Output, "Rank: Ghost")
}

func TestHandlePage(t *testing.T) {
	h := NewHandler(New(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	w := httptest.NewRecorder()
	h.Page(w, httptest.NewRequest(http.MethodGet, "/terminal", nil))

	var page PageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
	assert.Equal(t, "active", page.Terminal)
	assert.Len(t, page.Commands, 7)
	assert.Equal(t, "scan <target>", page.Commands[2].Cmd)
}
