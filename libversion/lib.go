package libversion

import (
	"github.com/anchore/libversion/internal/log"
	"github.com/anchore/libversion/libversion/logger"
)

// SetLogger installs the logger receiving diagnostic output from libversion and its subpackages. Comparison itself
// never logs.
func SetLogger(l logger.Logger) {
	log.Log = l
}
