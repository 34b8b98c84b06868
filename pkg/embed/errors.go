package embed

import (
	"github.com/pkg/errors"
)

// Error kinds. Every error returned by Embed and EmbedLink matches exactly
// one of them with errors.Is.
var (
	// ErrMalformedDocument means the input does not parse as a single
	// unencrypted PDF document.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrEmptyDocument means the document has no page to attach the link to.
	ErrEmptyDocument = errors.New("empty document")

	// ErrEmbedFailed means building the annotation, serializing the result
	// or verifying the serialized result failed.
	ErrEmbedFailed = errors.New("embed failed")
)

// Error is the error type returned by the embedder.
type Error struct {
	Kind error  // one of the Err* kinds above
	Op   string // pipeline step that failed
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func malformed(op string, err error) *Error {
	return &Error{Kind: ErrMalformedDocument, Op: op, Err: err}
}

func failed(op string, err error) *Error {
	return &Error{Kind: ErrEmbedFailed, Op: op, Err: err}
}
