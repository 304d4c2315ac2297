//go:build windows

package player

import "os"

// Windows has no job-control signals; pause and resume degrade to
// no-ops there and the state machine keeps tracking intent.
var (
	sigStop os.Signal = nil
	sigCont os.Signal = nil
)
