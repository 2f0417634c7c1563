package model

import "fmt"

// Each stage of a run fails with exactly one of these error types; the CLI
// matches them to report which file and which validation failed.

// MappingLoadError means the mapping table could not be loaded: file
// missing, unreadable, unparsable, or a required column absent.
type MappingLoadError struct {
	Path string
	Err  error
}

func (e *MappingLoadError) Error() string {
	return fmt.Sprintf("mapping load failed for %q: %v", e.Path, e.Err)
}

func (e *MappingLoadError) Unwrap() error { return e.Err }

// InputFormatError means the JSON input is not a well-formed array of
// objects. Index identifies the offending element, -1 when the problem is
// the file or the top-level value.
type InputFormatError struct {
	Path  string
	Index int
	Err   error
}

func (e *InputFormatError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid JSON input in %q: element %d: %v", e.Path, e.Index, e.Err)
	}
	return fmt.Sprintf("invalid JSON input in %q: %v", e.Path, e.Err)
}

func (e *InputFormatError) Unwrap() error { return e.Err }

// SchemaError means a record does not carry the configured key field as a
// string value.
type SchemaError struct {
	Index  int
	Key    string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("record %d: key %q: %s", e.Index, e.Key, e.Reason)
}

// OutputWriteError means the transformed collection or the audit report
// could not be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write %q: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
