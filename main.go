/*
This is an example application that drives the safety layer against
the simulated device: init once, then one frame per vblank until the
configured frame count or an interrupt.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/embergfx/ember/testbed"
)

func main() {
	cfg, err := testbed.LoadConfig("testbed/config.toml")
	if err != nil {
		panic(err)
	}

	demo, err := testbed.NewDemo(cfg)
	if err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// stop after the in-flight frame's close sequence
	go func() {
		<-sigCh
		demo.Stop()
	}()

	if err := demo.Run(); err != nil {
		panic(err)
	}
}
