package server

import (
	"context"
)

// ShutdownCoordinator owns the base context every request inherits, so
// handlers see cancellation as soon as shutdown begins rather than when
// Shutdown's deadline runs out.
type ShutdownCoordinator struct {
	baseCtx context.Context
	cancel  context.CancelFunc
}

func NewShutdownCoordinator(parent context.Context) *ShutdownCoordinator {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	return &ShutdownCoordinator{baseCtx: ctx, cancel: cancel}
}

func (sc *ShutdownCoordinator) BaseContext() context.Context {
	return sc.baseCtx
}

// InitiateShutdown cancels the base context. Safe to call more than once.
func (sc *ShutdownCoordinator) InitiateShutdown() {
	sc.cancel()
}
