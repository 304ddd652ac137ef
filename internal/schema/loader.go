package schema

import "context"

// Documents is the result of loading one or more configuration paths. Either
// document may be absent; validation decides what each mode requires.
type Documents struct {
	Sweep *SweepSpec
	Run   *RunConfig
}

// Loader is the interface for a format-dispatching document loader. Load
// reads every document under the given paths (files or directories),
// translates them into the format-agnostic model, and merges them into a
// single Documents value.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Documents, error)
}
