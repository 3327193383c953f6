package pricing

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Validation errors abort pricing for the line they occur on and are
// surfaced to the caller as-is; none of them is retryable.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product unavailable")
)

// InvalidSelectionError reports a violated option-group cardinality bound.
type InvalidSelectionError struct {
	GroupTitle string
	Min        int
	Max        int
	Selected   int
}

func (e *InvalidSelectionError) Error() string {
	if e.Selected < e.Min {
		return fmt.Sprintf("group %q requires at least %d selections", e.GroupTitle, e.Min)
	}
	return fmt.Sprintf("group %q allows at most %d selections", e.GroupTitle, e.Max)
}

// OptionGroupUnavailableError reports a selection inside a disabled group.
type OptionGroupUnavailableError struct {
	GroupTitle string
}

func (e *OptionGroupUnavailableError) Error() string {
	return fmt.Sprintf("option group %q is not available", e.GroupTitle)
}

// OptionItemUnavailableError reports a selected option item that is
// disabled or does not belong to the product at all.
type OptionItemUnavailableError struct {
	ItemID int64
	Name   string
}

func (e *OptionItemUnavailableError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("option item %q is not available", e.Name)
	}
	return fmt.Sprintf("option item %d is not available", e.ItemID)
}

// LineError wraps a validation error with the index of the cart line it
// occurred on, so callers can point at the offending item.
type LineError struct {
	Index int
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Index, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
