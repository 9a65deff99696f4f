package variant

import "fmt"

// VariantParseError is reported when product variants can't be fetched or decoded.
type VariantParseError struct {
	Handle string
	Err    error
}

func (e *VariantParseError) Error() string {
	return fmt.Sprintf("can't resolve variants of %q: %s", e.Handle, e.Err)
}

func (e *VariantParseError) Unwrap() error {
	return e.Err
}
