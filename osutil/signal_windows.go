package osutil

import (
	"os"
	"os/signal"
)

func SignalNotify(c chan os.Signal) {
	signal.Notify(c, os.Interrupt)
}

func SignalStop(c chan os.Signal) {
	signal.Stop(c)
}
