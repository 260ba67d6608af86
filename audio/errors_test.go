// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidBuffer, "invalid sample buffer"},
		{ErrDecodeFailed, "decode failed"},
		{ErrPartialFrame, "source returned a partial frame"},
		{ErrInvalidRate, "invalid target sample rate"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []error{ErrInvalidBuffer, ErrDecodeFailed, ErrPartialFrame, ErrInvalidRate} {
		wrapped := fmt.Errorf("context: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, sentinel)
		}
	}

	if errors.Is(ErrInvalidBuffer, ErrDecodeFailed) {
		t.Error("ErrInvalidBuffer matches ErrDecodeFailed")
	}
}
