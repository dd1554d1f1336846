package fetcher

import (
	"context"

	"github.com/tubegrab/tubegrab/internal/domain"
)

// Mock is a scripted collaborator for tests and offline development. Each
// func field overrides one operation; unset operations succeed with zero
// values.
type Mock struct {
	ProbeFunc func(ctx context.Context, url string) (domain.MediaInfo, error)
	FetchFunc func(ctx context.Context, req domain.FetchRequest, onEvent func(domain.ProgressEvent)) error
}

func (m *Mock) Probe(ctx context.Context, url string) (domain.MediaInfo, error) {
	if m.ProbeFunc != nil {
		return m.ProbeFunc(ctx, url)
	}
	return domain.MediaInfo{}, nil
}

func (m *Mock) Fetch(ctx context.Context, req domain.FetchRequest, onEvent func(domain.ProgressEvent)) error {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, req, onEvent)
	}
	return nil
}
