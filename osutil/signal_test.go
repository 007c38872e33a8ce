package osutil

import (
	"os"
	"testing"
)

func TestSignalNotify(t *testing.T) {
	c := make(chan os.Signal, 1)
	SignalNotify(c)
	SignalStop(c)
	select {
	case s := <-c:
		t.Error("Did not expect a signal", s)
	default:
	}
}
