package store

import "errors"

// ErrAlreadyExists indicates a set-level Add targeted a (key, value) pair
// already present. The dependency-free layer (depfree) turns this into a
// silent no-op; at this layer it is reported strictly.
var ErrAlreadyExists = errors.New("store: mapping already exists")

// ErrNotFound indicates a Remove targeted a (key, value) pair that is not
// present.
var ErrNotFound = errors.New("store: mapping not found")
