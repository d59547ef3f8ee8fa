// Package store persists process grids. Two implementations exist: a local
// diskv-backed store and a thin client for the remote processes API. Both
// exchange whole snapshots; there is no partial update.
package store

import (
	"context"
	"errors"

	"tableflip.dev/gridform/pkg/process"
)

// ErrNotFound indicates that neither the id nor the name resolved to a
// stored process.
var ErrNotFound = errors.New("process not found")

// ListOptions controls process listings.
type ListOptions struct {
	Skip       int
	Limit      int
	ActiveOnly bool
}

// Persistence defines the persistence contract for process grids.
type Persistence interface {
	// Save creates or updates a process and returns it with its identifier
	// and timestamps filled in.
	Save(ctx context.Context, p *process.Process) (*process.Process, error)

	// Get fetches by id when set, otherwise by name.
	Get(ctx context.Context, id, name string) (*process.Process, error)

	// List returns summaries, newest first.
	List(ctx context.Context, opts ListOptions) ([]process.Summary, error)

	// Search matches term against process names, descriptions, and grid
	// content.
	Search(ctx context.Context, term string) ([]process.Summary, error)

	// Delete deactivates a process, or erases it when hard is set.
	Delete(ctx context.Context, id string, hard bool) error
}

// Open returns the persistence selected by config: the remote client when a
// remote URL is configured, the local store otherwise.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if cfg.RemoteURL() != "" {
		return NewRemote(cfg.RemoteURL())
	}
	return Load(cfg)
}
