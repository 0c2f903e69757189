// SPDX-License-Identifier: MIT

package matrix

import (
	"io"
	"log"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/katalvlaran/lvlinalg/accel"
)

var pkgLogger atomic.Pointer[logr.Logger]

func init() {
	SetLogger(logr.Discard())
}

// SetLogger installs the logger used by the package. The default discards.
// Verbosity: V(1) backend selection and skipped singular columns,
// V(2) parallel dispatch decisions.
func SetLogger(l logr.Logger) {
	l = l.WithName("linalg")
	pkgLogger.Store(&l)
}

// Logger returns the installed logger.
func Logger() logr.Logger {
	return *pkgLogger.Load()
}

// NewStdLogger returns a logr.Logger writing through the standard log package
// to w. Verbosity is controlled globally with stdr.SetVerbosity.
func NewStdLogger(w io.Writer) logr.Logger {
	return stdr.New(log.New(w, "", log.LstdFlags))
}

func logBackend() {
	f := accel.DetectFeatures()
	Logger().V(1).Info("vector backend selected",
		"backend", accel.Name(),
		"arch", f.Architecture,
		"avx2", f.HasAVX2,
		"neon", f.HasNEON)
}

func logDispatch(op string, work int, o Options) {
	if l := Logger().V(2); l.Enabled() {
		l.Info("dispatch",
			"op", op,
			"work", work,
			"threshold", o.threshold,
			"parallel", work >= o.threshold,
			"block", o.blockSize)
	}
}
