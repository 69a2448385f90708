package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lmittmann/tint"
)

type loginResponse struct {
	SessionID string `json:"session_id"`
	Username  string `json:"username"`
	Token     string `json:"token"`
}

type gameSession struct {
	ID   string `json:"id"`
	Game string `json:"game"`
}

var games = []string{"password_cracker", "network_scanner", "cryptography", "binary_exploit", "ctf"}

type counters struct {
	requests atomic.Int64
	failures atomic.Int64
	received atomic.Int64
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	players := flag.Int("players", 100, "concurrent anonymous players")
	msgCount := flag.Int("messages", 20, "chat messages per player")
	room := flag.String("room", "#general", "chat room to flood")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stdout, nil))
	logger.Info("starting load test", "players", *players, "messages", *msgCount, "url", *baseURL)

	// One watcher proves live fan-out keeps up with the flood.
	var c counters
	stopWatch := watchRoom(logger, *baseURL, *room, &c)

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *players; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runPlayer(logger, *baseURL, *room, id, *msgCount, &c)
		}(i)
	}
	wg.Wait()

	// Give the watcher a moment to drain.
	time.Sleep(500 * time.Millisecond)
	stopWatch()

	logger.Info("load test complete",
		"elapsed", time.Since(start).Round(time.Millisecond),
		"requests", c.requests.Load(),
		"failures", c.failures.Load(),
		"live_frames", c.received.Load(),
	)
}

func runPlayer(logger *slog.Logger, baseURL, room string, id, msgCount int, c *counters) {
	var login loginResponse
	if err := call(c, http.MethodPost, baseURL+"/api/quick-login", "", nil, &login); err != nil {
		logger.Warn("login failed", "player", id, "error", err)
		return
	}

	g := games[id%len(games)]
	var sess gameSession
	if err := call(c, http.MethodGet, baseURL+"/api/games/"+g, login.Token, nil, &sess); err != nil {
		logger.Warn("start game failed", "player", id, "game", g, "error", err)
	}
	_ = call(c, http.MethodPost, baseURL+"/api/games/"+g, login.Token, map[string]any{"score": 10 + id%50}, nil)

	for i := 0; i < msgCount; i++ {
		body := map[string]any{
			"message": fmt.Sprintf("LoadTest msg %d from %s", i, login.Username),
			"room":    room,
		}
		if err := call(c, http.MethodPost, baseURL+"/api/chat/send", login.Token, body, nil); err != nil {
			logger.Warn("send failed", "player", id, "error", err)
			break
		}
		// Small sleep to prevent instant localhost bottleneck (simulate real network)
		time.Sleep(10 * time.Millisecond)
	}
}

func watchRoom(logger *slog.Logger, baseURL, room string, c *counters) func() {
	wsURL := "ws" + strings.TrimPrefix(baseURL, "http") + "/ws/chat?room=" + url.QueryEscape(room)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		logger.Warn("websocket connect failed, live fan-out not measured", "error", err)
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			c.received.Add(1)
		}
	}()

	return func() {
		conn.Close()
		<-done
	}
}

func call(c *counters, method, target, token string, body, out any) error {
	c.requests.Add(1)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, target, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.failures.Add(1)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.failures.Add(1)
		return fmt.Errorf("%s %s: status %d", method, target, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
