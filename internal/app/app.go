// Package app wires the lookup pipeline: prompt, fetch, parse, write.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bharatsindhu/username-history/internal/history"
	"github.com/bharatsindhu/username-history/internal/output"
)

// MsgParseFailed is printed when the response cannot be turned into usernames.
const MsgParseFailed = "Couldn't get past usernames!"

// Fetcher retrieves the raw username-history body for a user.
type Fetcher interface {
	UsernameHistoryURL(id history.UserID) string
	Fetch(ctx context.Context, url string) (string, error)
}

// Console is the interactive side of the run.
type Console interface {
	ReadUserID() (history.UserID, error)
	WaitForExit() error
}

// State is a step of a single run. Runs only move forward.
type State int

const (
	StateAwaitingInput State = iota
	StateFetching
	StateParsing
	StateWriting
	StateDone
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateFetching:
		return "fetching"
	case StateParsing:
		return "parsing"
	case StateWriting:
		return "writing"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Outcome describes how a run that reached StateDone ended.
type Outcome int

const (
	OutcomeAborted Outcome = iota
	OutcomeWritten
	OutcomeNoFile
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAborted:
		return "aborted"
	case OutcomeWritten:
		return "written"
	case OutcomeNoFile:
		return "no_file"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// App runs one lookup. Out receives the operator-facing status lines.
type App struct {
	Console    Console
	Fetcher    Fetcher
	WriteLines func(path string, lines []string) error
	OutputPath string
	Out        io.Writer
	Logger     *slog.Logger

	state State
}

// State returns the last state the run entered.
func (a *App) State() State {
	return a.state
}

// Run processes exactly one identifier. Input, fetch and write failures are returned
// and skip the exit prompt; a malformed response is reported and the run still completes.
func (a *App) Run(ctx context.Context) (Outcome, error) {
	logger := a.logger()
	a.enter(StateAwaitingInput)

	id, err := a.Console.ReadUserID()
	if err != nil {
		return OutcomeAborted, err
	}

	a.enter(StateFetching)
	url := a.Fetcher.UsernameHistoryURL(id)
	logger.Info("fetching username history", "user_id", id.String(), "url", url)

	body, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		return OutcomeAborted, err
	}

	a.enter(StateParsing)
	page, err := history.ParsePage(body)
	if err != nil {
		logger.Warn("username history rejected", "user_id", id.String(), "error", err)
		fmt.Fprintln(a.Out, MsgParseFailed)
		return a.finish(OutcomeNoFile)
	}
	if page.HasMore() {
		logger.Warn("username history has more pages; only the first page is saved",
			"user_id", id.String(), "next_cursor", page.NextCursor)
	}

	a.enter(StateWriting)
	path := a.outputPath()
	if err := a.writeLines(path, page.Usernames); err != nil {
		return OutcomeAborted, err
	}
	logger.Info("usernames saved", "user_id", id.String(), "path", path, "count", len(page.Usernames))
	fmt.Fprintf(a.Out, "Usernames have been saved to '%s'\n", path)

	return a.finish(OutcomeWritten)
}

func (a *App) finish(outcome Outcome) (Outcome, error) {
	a.enter(StateDone)
	if err := a.Console.WaitForExit(); err != nil {
		return outcome, err
	}
	return outcome, nil
}

func (a *App) enter(s State) {
	a.state = s
	a.logger().Debug("state", "state", s.String())
}

func (a *App) outputPath() string {
	if a.OutputPath == "" {
		return output.DefaultPath
	}
	return a.OutputPath
}

func (a *App) writeLines(path string, lines []string) error {
	if a.WriteLines != nil {
		return a.WriteLines(path, lines)
	}
	return output.WriteLines(path, lines)
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}
