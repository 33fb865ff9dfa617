package component

import (
	"errors"
	"fmt"
)

var (
	ErrEntityNotAlive  = errors.New("ecs: entity not alive")
	ErrMalformedBundle = errors.New("ecs: malformed bundle")
)

// BundleError reports a conventionally fixed slot that is missing or holds
// the wrong kind of value.
type BundleError struct {
	Slot int
	Want Kind
	Got  Kind
}

func (e *BundleError) Error() string {
	if e.Got == KindInvalid {
		return fmt.Sprintf("ecs: bundle slot %d: want %s, missing", e.Slot, e.Want)
	}
	return fmt.Sprintf("ecs: bundle slot %d: want %s, got %s", e.Slot, e.Want, e.Got)
}

func (e *BundleError) Unwrap() error {
	return ErrMalformedBundle
}
