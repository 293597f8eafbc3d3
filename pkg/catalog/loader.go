package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultSourceURL is the fixed JSON resource holding the catalog.
	DefaultSourceURL = "https://s3-ap-southeast-1.amazonaws.com/he-public-data/gamesarena274f2bf.json"
	DefaultTimeout   = 15 * time.Second

	maxPayloadBytes = 32 << 20
)

// Loader performs the single dataset fetch of a session.
// The source is an http(s) URL, a file:// URL or a plain file path.
type Loader struct {
	source  string
	timeout time.Duration
	client  *http.Client
}

// NewLoader creates a loader for source. A zero timeout means no deadline
// beyond the caller's context.
func NewLoader(source string, timeout time.Duration) *Loader {
	return &Loader{
		source:  source,
		timeout: timeout,
		client:  http.DefaultClient,
	}
}

// WithClient replaces the HTTP client used for remote sources.
func (l *Loader) WithClient(client *http.Client) *Loader {
	if client != nil {
		l.client = client
	}
	return l
}

// Source returns the configured dataset location.
func (l *Loader) Source() string {
	return l.source
}

// Load fetches and parses the dataset. Every failure is a *FetchError.
func (l *Loader) Load(ctx context.Context) (Dataset, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	raw, err := l.read(ctx)
	if err != nil {
		return Dataset{}, err
	}

	ds, err := ParseDataset(raw)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			fe.Source = l.source
		}
		return Dataset{}, err
	}
	log.Debugf("Loaded %d records from %s", ds.Len(), l.source)
	return ds, nil
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	u, err := url.Parse(l.source)
	if err != nil {
		return nil, &FetchError{Op: OpRequest, Source: l.source, Err: err}
	}

	switch u.Scheme {
	case "http", "https":
		return l.fetch(ctx)
	case "file":
		return l.readFile(u.Path)
	case "":
		return l.readFile(l.source)
	default:
		return nil, &FetchError{Op: OpRequest, Source: l.source, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, &FetchError{Op: OpRequest, Source: l.source, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &FetchError{Op: OpRequest, Source: l.source, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Op: OpStatus, Source: l.source, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, &FetchError{Op: OpRead, Source: l.source, Err: err}
	}
	return body, nil
}

func (l *Loader) readFile(path string) ([]byte, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, &FetchError{Op: OpRead, Source: l.source, Err: err}
	}
	return body, nil
}

// LoadOrEmpty runs the loader once. A failure is logged for the operator
// and an empty dataset is returned; there is no retry.
func LoadOrEmpty(ctx context.Context, l *Loader, logger *log.Logger) Dataset {
	ds, err := l.Load(ctx)
	if err != nil {
		if logger == nil {
			logger = log.Default()
		}
		logger.Error("Error fetching data", "err", err)
		return Dataset{}
	}
	return ds
}
