package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"BE-HOTEL-ADMIN/app/listing"
	"BE-HOTEL-ADMIN/app/validation"
)

// DefaultTimeout bounds every request when Options.Timeout is zero.
const DefaultTimeout = 10 * time.Second

type Options struct {
	// BaseURL is the API root, e.g. http://localhost:8080.
	BaseURL string
	// Resource is the collection path under /api, e.g. "rooms".
	Resource string
	// Token returns the bearer token to send, empty for none.
	Token func() string
	// OnUnauthorized runs after any 401, typically to drop the stored session.
	OnUnauthorized func()
	Timeout        time.Duration
	Client         *http.Client
}

// RESTBackend is a listing.Backend over the JSON API at {base}/api/{resource}.
type RESTBackend[T any] struct {
	base           string
	resource       string
	token          func() string
	onUnauthorized func()
	client         *http.Client
}

func NewRESTBackend[T any](opts Options) *RESTBackend[T] {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &RESTBackend[T]{
		base:           strings.TrimRight(opts.BaseURL, "/") + "/api/" + strings.Trim(opts.Resource, "/"),
		resource:       opts.Resource,
		token:          opts.Token,
		onUnauthorized: opts.OnUnauthorized,
		client:         client,
	}
}

func (b *RESTBackend[T]) List(ctx context.Context) ([]T, error) {
	body, err := b.do(ctx, http.MethodGet, b.base, nil)
	if err != nil {
		return nil, err
	}
	records, err := decodeList[T](body)
	if err != nil {
		return nil, &listing.PersistenceError{Op: listing.OpRead, Slot: b.resource, Err: err}
	}
	return records, nil
}

func (b *RESTBackend[T]) Create(ctx context.Context, rec T) (T, error) {
	return b.send(ctx, http.MethodPost, b.base, rec)
}

func (b *RESTBackend[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	return b.send(ctx, http.MethodPut, b.base+"/"+strconv.Itoa(id), rec)
}

func (b *RESTBackend[T]) Delete(ctx context.Context, id int) error {
	_, err := b.do(ctx, http.MethodDelete, b.base+"/"+strconv.Itoa(id), nil)
	return err
}

func (b *RESTBackend[T]) send(ctx context.Context, method, url string, rec T) (T, error) {
	var zero T
	payload, err := json.Marshal(rec)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", b.resource, err)
	}
	body, err := b.do(ctx, method, url, payload)
	if err != nil {
		return zero, err
	}
	saved, err := decodeRecord[T](body)
	if err != nil {
		return zero, &listing.PersistenceError{Op: listing.OpWrite, Slot: b.resource, Err: err}
	}
	return saved, nil
}

func (b *RESTBackend[T]) do(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if b.token != nil {
		if token := b.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", b.resource, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if b.onUnauthorized != nil {
			b.onUnauthorized()
		}
		return nil, listing.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound && method != http.MethodGet:
		return nil, listing.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		if errs := fieldErrors(body); len(errs) > 0 {
			return nil, errs
		}
		return nil, fmt.Errorf("%s %s: status %d: %s", method, url, resp.StatusCode, message(body))
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("%s %s: status %d: %s", method, url, resp.StatusCode, message(body))
	}
	return body, nil
}

// fieldErrors decodes the {"errors": [{field, message}]} body of a rejected write.
func fieldErrors(body []byte) validation.Errors {
	var out struct {
		Errors validation.Errors `json:"errors"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil
	}
	return out.Errors
}
