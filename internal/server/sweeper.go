package server

import (
	"context"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/sweeper"
)

// Sweeper defines the minimal sweep loop behavior needed by the server.
type Sweeper interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() sweeper.Status
}
