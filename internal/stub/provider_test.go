package stub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharatsindhu/username-history/internal/history"
)

const sampleData = `{"users": [{"id": 1, "history": [{"name": "first"}, {"name": "second"}]}, {"id": 2, "history": []}]}`

func TestStaticProviderHistory(t *testing.T) {
	provider, err := NewStaticProvider([]byte(sampleData))
	require.NoError(t, err)

	entries, err := provider.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []history.Entry{{Name: "first"}, {Name: "second"}}, entries)

	entries[0].Name = "mutated"
	again, err := provider.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "first", again[0].Name)
}

func TestStaticProviderEmptyHistory(t *testing.T) {
	provider, err := NewStaticProvider([]byte(sampleData))
	require.NoError(t, err)

	entries, err := provider.History(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestStaticProviderNotFound(t *testing.T) {
	provider, err := NewStaticProvider([]byte(sampleData))
	require.NoError(t, err)

	_, err = provider.History(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewStaticProviderRejectsBadFixtures(t *testing.T) {
	tests := map[string]string{
		"malformed":    `{"users": [`,
		"duplicate id": `{"users": [{"id": 1}, {"id": 1}]}`,
		"empty name":   `{"users": [{"id": 1, "history": [{"name": ""}]}]}`,
		"negative id":  `{"users": [{"id": -1}]}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewStaticProvider([]byte(data))
			assert.Error(t, err)
		})
	}
}
