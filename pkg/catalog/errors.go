package catalog

import (
	"errors"
	"fmt"
)

// ErrFetch matches every dataset loading failure through errors.Is.
var ErrFetch = errors.New("catalog: fetch failed")

// FetchOp names the step of a load that failed.
type FetchOp string

const (
	OpRequest FetchOp = "request"
	OpStatus  FetchOp = "status"
	OpRead    FetchOp = "read"
	OpParse   FetchOp = "parse"
)

// FetchError is the single error kind produced by the loader.
type FetchError struct {
	Op     FetchOp
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("fetch dataset: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fetch dataset from %s: %s: %v", e.Source, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is makes every FetchError match ErrFetch.
func (e *FetchError) Is(target error) bool { return target == ErrFetch }
