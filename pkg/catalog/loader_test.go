package catalog

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

const haloPayload = `[
	{"sentinel": true},
	{"title": "Halo", "platform": "Xbox", "score": 9, "genre": "FPS", "editors_choice": "Y"},
	{"title": "Halo", "platform": "PC", "score": 9, "genre": "FPS", "editors_choice": "Y"}
]`

func TestLoaderHTTP(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(haloPayload))
	}))
	defer srv.Close()

	ds, err := NewLoader(srv.URL, time.Second).WithClient(srv.Client()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 2 {
		t.Errorf("expected 2 records, got %d", ds.Len())
	}
	if hits.Load() != 1 {
		t.Errorf("expected exactly one request, got %d", hits.Load())
	}
}

func TestLoaderFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		op      FetchOp
	}{
		{
			name: "non-2xx",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "gone", http.StatusNotFound)
			},
			op: OpStatus,
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"oops": true}`))
			},
			op: OpParse,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			_, err := NewLoader(srv.URL, time.Second).Load(context.Background())
			if !errors.Is(err, ErrFetch) {
				t.Fatalf("expected ErrFetch, got %v", err)
			}
			var fe *FetchError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FetchError, got %T", err)
			}
			if fe.Op != tc.op {
				t.Errorf("Op = %s, want %s", fe.Op, tc.op)
			}
			if fe.Source != srv.URL {
				t.Errorf("Source = %q, want %q", fe.Source, srv.URL)
			}
		})
	}
}

func TestLoaderTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewLoader(srv.URL, 50*time.Millisecond).Load(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Op != OpRequest {
		t.Fatalf("expected request FetchError, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline to be wrapped, got %v", err)
	}
}

func TestLoaderFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	if err := os.WriteFile(path, []byte(haloPayload), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, source := range []string{path, "file://" + path} {
		ds, err := NewLoader(source, 0).Load(context.Background())
		if err != nil {
			t.Fatalf("Load(%q): %v", source, err)
		}
		if ds.Len() != 2 {
			t.Errorf("Load(%q) = %d records, want 2", source, ds.Len())
		}
	}
}

func TestLoaderUnsupportedScheme(t *testing.T) {
	_, err := NewLoader("ftp://example.com/games.json", 0).Load(context.Background())
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}

func TestLoadOrEmptyLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.ErrorLevel})

	missing := filepath.Join(t.TempDir(), "missing.json")
	ds := LoadOrEmpty(context.Background(), NewLoader(missing, 0), logger)

	if !ds.Empty() {
		t.Errorf("expected empty dataset, got %d records", ds.Len())
	}
	if !strings.Contains(buf.String(), "Error fetching data") {
		t.Errorf("expected failure to be logged, got %q", buf.String())
	}
}
