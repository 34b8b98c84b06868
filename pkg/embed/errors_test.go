package embed

import (
	"errors"
	"io"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: ErrEmptyDocument}, "empty document"},
		{&Error{Kind: ErrEmptyDocument, Op: "select page"}, "empty document: select page"},
		{malformed("parse", io.ErrUnexpectedEOF), "malformed document: parse: unexpected EOF"},
		{failed("serialize", errors.New("disk on fire")), "embed failed: serialize: disk on fire"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := error(malformed("parse", io.ErrUnexpectedEOF))

	if !errors.Is(err, ErrMalformedDocument) {
		t.Error("errors.Is(err, ErrMalformedDocument) = false")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is(err, io.ErrUnexpectedEOF) = false")
	}
	if errors.Is(err, ErrEmbedFailed) {
		t.Error("errors.Is(err, ErrEmbedFailed) = true")
	}

	var e *Error
	if !errors.As(err, &e) || e.Op != "parse" {
		t.Errorf("errors.As() = %+v", e)
	}
}
