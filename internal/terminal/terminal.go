// Package terminal fakes a shell. Commands are matched whole against a fixed
// table after trimming and lowercasing; nothing is ever executed.
package terminal

import (
	"strings"
	"time"
)

var outputs = map[string]string{
	"help":                                   "Available commands: ls, scan, crack, decode, whoami, clear",
	"ls":                                     "flag.txt\nsecret.txt\nnetwork.txt\nuser.txt\nsystem.log\nroot.txt",
	"scan 10.0.0.0/24":                       "Scanning...\n10.0.0.1 - Gateway\n10.0.0.100 - Target Server (Ports: 22, 80, 443, 8080)\n10.0.0.150 - Your Machine",
	"crack 5f4dcc3b5aa765d61d8327deb882cf99": "Cracking MD5...\nPassword: password\nTime: 2.3s",
	"decode secret.enc":                      "Decoding...\nMessage: 'The encryption key is: HACKARENA_ULTIMATE_2024'",
	"whoami":                                 "User: anonymous\nRank: Ghost\nPoints: 0\nAccess: Level 1",
	"clear":                                  "",
}

// Command documents one entry of the help listing.
type Command struct {
	Cmd  string `json:"cmd"`
	Desc string `json:"desc"`
}

var commands = []Command{
	{Cmd: "help", Desc: "Show available commands"},
	{Cmd: "ls", Desc: "List files"},
	{Cmd: "scan <target>", Desc: "Scan network"},
	{Cmd: "crack <hash>", Desc: "Crack password hash"},
	{Cmd: "decode <file>", Desc: "Decode file"},
	{Cmd: "whoami", Desc: "Show user info"},
	{Cmd: "clear", Desc: "Clear terminal"},
}

type Result struct {
	Command   string  `json:"command"`
	Output    string  `json:"output"`
	Timestamp float64 `json:"timestamp"`
}

type Terminal struct {
	now func() time.Time
}

func New() *Terminal {
	return &Terminal{now: time.Now}
}

// Execute never fails: unknown commands get a "not found" output.
func (t *Terminal) Execute(commandLine string) Result {
	cmd := strings.ToLower(strings.TrimSpace(commandLine))

	out, ok := outputs[cmd]
	if !ok {
		out = "Command not found: " + cmd + "\nType 'help' for available commands."
	}

	return Result{
		Command:   cmd,
		Output:    out,
		Timestamp: float64(t.now().UnixNano()) / 1e9,
	}
}

// Commands returns the help listing.
func (t *Terminal) Commands() []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	return out
}
