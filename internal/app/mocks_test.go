package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bharatsindhu/username-history/internal/history"
)

type MockConsole struct {
	mock.Mock
}

func (m *MockConsole) ReadUserID() (history.UserID, error) {
	args := m.Called()
	return args.Get(0).(history.UserID), args.Error(1)
}

func (m *MockConsole) WaitForExit() error {
	args := m.Called()
	return args.Error(0)
}

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) UsernameHistoryURL(id history.UserID) string {
	args := m.Called(id)
	return args.String(0)
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}
