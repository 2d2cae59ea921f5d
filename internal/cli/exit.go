package cli

import (
	"context"
	stderrors "errors"

	"github.com/matzehuels/smartedge/pkg/errors"
)

// Exit codes returned by the smartedge binary.
const (
	ExitOK          = 0
	ExitFailure     = 1   // internal errors and anything without a code
	ExitBadInput    = 2   // INVALID_INPUT, INVALID_GEOMETRY, CONFIG_OUT_OF_RANGE
	ExitNoPath      = 3   // NO_PATH_FOUND
	ExitInterrupted = 130 // shell convention for SIGINT
)

// ExitCode maps a command error to the process exit code, so scripts can
// tell a scene without a route from a malformed one.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if stderrors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGeometry, errors.ErrCodeConfigOutOfRange:
		return ExitBadInput
	case errors.ErrCodeNoPathFound:
		return ExitNoPath
	}
	return ExitFailure
}
