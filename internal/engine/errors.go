package engine

import "errors"

// ErrReadOnly indicates a mutation was attempted on a read-only editor.
var ErrReadOnly = errors.New("editor is read-only")
