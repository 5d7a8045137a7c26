package ui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/appengine-ltd/age-of-polders/internal/game"
	"github.com/appengine-ltd/age-of-polders/internal/parser"
)

const maxConsoleMessages = 260

// Console turns player input into game commands and keeps the message log.
// Both the terminal and the window client drive a session through it.
type Console struct {
	run         *game.RunState
	parser      *parser.Parser
	snapshotDir string
	messages    []string
	pending     *parser.ClarifyQuestion
	now         func() time.Time
}

type ConsoleResult struct {
	Quit    bool
	Changed bool
	Message string
}

func NewConsole(run *game.RunState, snapshotDir string) *Console {
	if snapshotDir == "" {
		snapshotDir = "."
	}
	return &Console{
		run:         run,
		parser:      parser.New(),
		snapshotDir: snapshotDir,
		now:         time.Now,
	}
}

func (c *Console) Run() *game.RunState {
	return c.run
}

func (c *Console) Messages() []string {
	return c.messages
}

func (c *Console) Pending() *parser.ClarifyQuestion {
	return c.pending
}

func (c *Console) LastMessage() string {
	if len(c.messages) == 0 {
		return ""
	}
	return c.messages[len(c.messages)-1]
}

func (c *Console) parseContext() parser.ParseContext {
	tools := make([]string, 0, len(game.Commands()))
	for _, cmd := range game.Commands() {
		tools = append(tools, string(cmd))
	}
	return parser.ParseContext{
		ActiveTool: string(c.run.ActiveCommand),
		Tools:      tools,
	}
}

// Parse reads one line of input. While a clarify question is open, a bare
// option number picks that option.
func (c *Console) Parse(raw string) parser.Intent {
	if c.pending != nil {
		pending := c.pending
		c.pending = nil
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n >= 1 && n <= len(pending.Options) {
			return pending.Options[n-1]
		}
	}
	return c.parser.Parse(c.parseContext(), raw)
}

func (c *Console) Submit(raw string) ConsoleResult {
	return c.Execute(c.Parse(raw))
}

// Do runs a command built from a verb and its arguments, as hotkeys do.
func (c *Console) Do(verb string, args ...string) ConsoleResult {
	return c.Execute(parser.Intent{Kind: parser.Command, Verb: verb, Args: args, Confidence: 1})
}

func (c *Console) Execute(intent parser.Intent) ConsoleResult {
	if intent.Clarify != nil {
		return c.ask(intent.Clarify)
	}

	switch intent.Verb {
	case "quit":
		return ConsoleResult{Quit: true}
	case "snapshot":
		path, err := c.Snapshot()
		if err != nil {
			return c.reply(ConsoleResult{Message: "Snapshot failed: " + err.Error()})
		}
		return c.reply(ConsoleResult{Message: "Snapshot written to " + path})
	}

	command := parser.IntentToCommandString(intent)
	if command == "" {
		return c.reply(ConsoleResult{Message: "Enter a command."})
	}
	res := c.run.ExecuteRunCommand(command)
	if !res.Handled {
		return c.reply(ConsoleResult{Message: fmt.Sprintf("Unknown command %q.", command)})
	}
	return c.reply(ConsoleResult{Changed: res.Changed, Message: res.Message})
}

func (c *Console) ask(q *parser.ClarifyQuestion) ConsoleResult {
	var b strings.Builder
	b.WriteString(q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "  %d) %s", i+1, parser.IntentToCommandString(opt))
	}
	if len(q.Options) > 0 {
		c.pending = q
	}
	return c.reply(ConsoleResult{Message: b.String()})
}

func (c *Console) reply(res ConsoleResult) ConsoleResult {
	c.appendMessage(res.Message)
	return res
}

func (c *Console) appendMessage(message string) {
	line := strings.TrimSpace(message)
	if line == "" {
		return
	}
	formatted := fmt.Sprintf("[%s] %s", c.now().Format("15:04:05"), line)
	c.messages = append(c.messages, formatted)
	if len(c.messages) > maxConsoleMessages {
		c.messages = append([]string(nil), c.messages[len(c.messages)-maxConsoleMessages:]...)
	}
}

// Snapshot writes the current map as a PNG into the snapshot directory.
func (c *Console) Snapshot() (string, error) {
	name := fmt.Sprintf("polders-%s-t%03d.png", c.run.SessionID.String()[:8], c.run.Turn)
	path := filepath.Join(c.snapshotDir, name)
	sel := c.run.Selected
	if err := WriteSnapshot(c.run.Grid, path, SnapshotOptions{CellSize: DefaultSnapshotCellSize, Selected: &sel}); err != nil {
		return "", err
	}
	c.run.Logger().Info("snapshot written", "path", path)
	return path, nil
}
