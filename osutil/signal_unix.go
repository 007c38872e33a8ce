//go:build !windows
// +build !windows

package osutil

import (
	"os"
	"os/signal"
	"syscall"
)

// SignalNotify asks the OS to send the signals which normally terminate an interactive
// run to the supplied channel. Once called, those signals no longer kill the process so
// the caller must poll the channel.
func SignalNotify(c chan os.Signal) {
	signal.Notify(c, os.Interrupt, syscall.SIGHUP, syscall.SIGTERM)
}

// SignalStop reverts the effect of SignalNotify.
func SignalStop(c chan os.Signal) {
	signal.Stop(c)
}
