package tars

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the codec (spec.md §7). Callers can match with
// errors.Is against these sentinels; every returned error also carries a
// formatted message naming the failing tag, expected kind and observed
// wire type/value.
var (
	// ErrTruncated means the cursor ran out of bytes before a header or
	// payload completed.
	ErrTruncated = errors.New("tars: truncated")

	// ErrTypeMismatch means the schema expected one kind and the wire
	// delivered an incompatible wire type.
	ErrTypeMismatch = errors.New("tars: type mismatch")

	// ErrDisorderedField means a wire tag arrived lower than the current
	// schema tag inside a struct frame.
	ErrDisorderedField = errors.New("tars: disordered field")

	// ErrRangeOverflow means a numeric value exceeded the signed/unsigned
	// bounds of its kind, on encode or decode.
	ErrRangeOverflow = errors.New("tars: range overflow")

	// ErrInvalidValue means a bool was outside {0,1}, a string exceeded
	// MaxStrLen, or a host value was of the wrong category for its kind.
	ErrInvalidValue = errors.New("tars: invalid value")

	// ErrSchemaError means the schema itself is malformed: an out-of-range
	// struct id, a non-zero tag on a struct's first row, a non-scalar map
	// key kind, or an unknown primary kind.
	ErrSchemaError = errors.New("tars: schema error")

	// ErrUnsupported means a float/double encode or decode was attempted,
	// or a SimpleList decode was attempted.
	ErrUnsupported = errors.New("tars: unsupported")
)

func truncatedf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrTruncated}, args...)...)
}

func typeMismatchf(tag byte, expected string, observed fmt.Stringer) error {
	return fmt.Errorf("%w: tag %d: expected %s, got wire type %s", ErrTypeMismatch, tag, expected, observed)
}

func disorderedFieldf(tag, schemaTag byte) error {
	return fmt.Errorf("%w: wire tag %d arrived after schema tag %d", ErrDisorderedField, tag, schemaTag)
}

func rangeOverflowf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrRangeOverflow}, args...)...)
}

func invalidValuef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...)
}

func schemaErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrSchemaError}, args...)...)
}

func unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUnsupported}, args...)...)
}
