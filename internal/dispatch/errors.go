package dispatch

import "fmt"

// Kind classifies a dispatch failure.
type Kind int

const (
	// KindNotFound: the tool name matched no catalog entry; no handler ran.
	KindNotFound Kind = iota
	// KindInvalidArguments: a required argument was absent.
	KindInvalidArguments
	// KindHandlerFailure: the handler's underlying primitive failed; the
	// original error is preserved for unwrapping.
	KindHandlerFailure
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidArguments:
		return "invalid_arguments"
	case KindHandlerFailure:
		return "handler_failure"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by CallTool.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func notFound(name string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("unknown tool %q", name)}
}

func invalidArguments(tool, field string) *Error {
	return &Error{Kind: KindInvalidArguments, Message: fmt.Sprintf("tool %q: missing required argument %q", tool, field)}
}

func handlerFailure(tool string, err error) *Error {
	return &Error{Kind: KindHandlerFailure, Message: fmt.Sprintf("tool %q: %v", tool, err), cause: err}
}
