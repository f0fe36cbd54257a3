package client

import "context"

// Client is what cmd/client runs.
type Client interface {
	Run() error
}

// UI is the interactive front end driven by App. Run blocks until the user
// quits or ctx is cancelled.
type UI interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
