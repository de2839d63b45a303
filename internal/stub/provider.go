// Package stub serves username history from a local fixture in the same
// envelope shape as the users API, for offline runs and tests.
package stub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bharatsindhu/username-history/internal/history"
)

// Provider abstracts history retrieval for the stub server.
type Provider interface {
	History(ctx context.Context, id history.UserID) ([]history.Entry, error)
}

var (
	// ErrNotFound is returned when the fixture has no such user.
	ErrNotFound = errors.New("stub: user not found")
)

// StaticProvider keeps fixture records in memory.
type StaticProvider struct {
	mu    sync.RWMutex
	users map[history.UserID][]history.Entry
}

type fixtureUser struct {
	ID      history.UserID  `json:"id"`
	History []history.Entry `json:"history"`
}

// NewStaticProvider parses a JSON fixture of the form
// {"users": [{"id": 1, "history": [{"name": "..."}]}]}.
func NewStaticProvider(data []byte) (*StaticProvider, error) {
	var parsed struct {
		Users []fixtureUser `json:"users"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("stub: parse fixture: %w", err)
	}

	provider := &StaticProvider{
		users: make(map[history.UserID][]history.Entry, len(parsed.Users)),
	}
	for _, u := range parsed.Users {
		if _, dup := provider.users[u.ID]; dup {
			return nil, fmt.Errorf("stub: fixture lists user %d twice", u.ID)
		}
		for i, e := range u.History {
			if e.Name == "" {
				return nil, fmt.Errorf("stub: user %d entry %d has no name", u.ID, i)
			}
		}
		provider.users[u.ID] = append([]history.Entry{}, u.History...)
	}
	return provider, nil
}

// History returns a copy of the fixture entries for id.
func (p *StaticProvider) History(_ context.Context, id history.UserID) ([]history.Entry, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entries, ok := p.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]history.Entry{}, entries...), nil
}
