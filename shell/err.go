package shell

import (
	"errors"
	"fmt"
)

var ErrUnsupportedContext = errors.New("unsupported native gl context")
var ErrHandshake = errors.New("browser handshake failed")

// Handle terminates the process if err is not nil. Used for failures of the
// graphics surface or of the engine channels, which can not be recovered
// from without recreating the window.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
