package server

import (
	"context"

	"mlb-apple-service/internal/watcher"
)

// Watcher defines the minimal watcher behavior needed by the server.
type Watcher interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() watcher.Status
}
