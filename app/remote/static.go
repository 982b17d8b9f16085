package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"BE-HOTEL-ADMIN/app/listing"
)

// StaticBackend lists from a read-only JSON document and sends every mutation to
// local. The document is an http(s) URL or a file path.
type StaticBackend[T any] struct {
	source string
	client *http.Client
	local  listing.Backend[T]
}

func NewStaticBackend[T any](source string, timeout time.Duration, local listing.Backend[T]) *StaticBackend[T] {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &StaticBackend[T]{source: source, client: &http.Client{Timeout: timeout}, local: local}
}

func (s *StaticBackend[T]) List(ctx context.Context) ([]T, error) {
	body, err := s.fetch(ctx)
	if err != nil {
		return nil, &listing.PersistenceError{Op: listing.OpRead, Slot: s.source, Err: err}
	}
	records, err := decodeList[T](body)
	if err != nil {
		return nil, &listing.PersistenceError{Op: listing.OpRead, Slot: s.source, Err: err}
	}
	return records, nil
}

func (s *StaticBackend[T]) fetch(ctx context.Context) ([]byte, error) {
	if s.source == "" {
		return nil, fmt.Errorf("no static source configured")
	}
	if !strings.HasPrefix(s.source, "http://") && !strings.HasPrefix(s.source, "https://") {
		return os.ReadFile(s.source)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (s *StaticBackend[T]) Create(ctx context.Context, rec T) (T, error) {
	return s.local.Create(ctx, rec)
}

func (s *StaticBackend[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	return s.local.Update(ctx, id, rec)
}

func (s *StaticBackend[T]) Delete(ctx context.Context, id int) error {
	return s.local.Delete(ctx, id)
}
