package singine

import (
	"fmt"
)

// StorageError indicates that the durable store was unreachable, a statement
// failed, or a schema precondition was missing. It is never retried inside
// the engine; the calling shell decides whether to retry the whole operation.
//
// The original underlying error can be accessed via errors.Unwrap.
type StorageError struct {
	Op    string
	cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.cause)
}

func (e *StorageError) Unwrap() error { return e.cause }

// storageErr tags a store failure with the operation that hit it.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, cause: err}
}
