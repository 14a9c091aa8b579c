// Package lifecycle registers exit hooks and an interrupt/termination signal
// handler for a program.
package lifecycle

import (
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Signals are the signals delivered to an installed handler.
var Signals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// Installer owns a list of exit hooks and at most one signal handler.
type Installer struct {
	mu      sync.Mutex
	hooks   []func()
	handler func(os.Signal)
	sigs    chan os.Signal
	done    chan struct{}
	exit    func(int)
}

// New returns an Installer that terminates through os.Exit.
func New() *Installer {
	return &Installer{exit: os.Exit}
}

// Install appends exitFn to the exit hooks and makes handler the handler for
// Signals, replacing any previous handler. Nil arguments are ignored.
func (in *Installer) Install(exitFn func(), handler func(os.Signal)) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if exitFn != nil {
		in.hooks = append(in.hooks, exitFn)
	}
	if handler == nil {
		return
	}
	in.handler = handler
	if in.sigs == nil {
		in.sigs = make(chan os.Signal, 1)
		in.done = make(chan struct{})
		signal.Notify(in.sigs, Signals...)
		go in.dispatch(in.sigs, in.done)
	}
}

func (in *Installer) dispatch(sigs <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case sig := <-sigs:
			in.mu.Lock()
			h := in.handler
			in.mu.Unlock()
			slog.Debug("signal received", "signal", sig.String())
			if h != nil {
				h(sig)
			}
		case <-done:
			return
		}
	}
}

// Stop unsubscribes from Signals and drops the handler. Exit hooks are kept.
func (in *Installer) Stop() {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.sigs == nil {
		return
	}
	signal.Stop(in.sigs)
	close(in.done)
	in.sigs, in.done, in.handler = nil, nil, nil
}

// RunExitHooks runs every pending exit hook in registration order. A hook
// runs at most once.
func (in *Installer) RunExitHooks() {
	in.mu.Lock()
	hooks := in.hooks
	in.hooks = nil
	in.mu.Unlock()

	for _, h := range hooks {
		h()
	}
}

// Exit runs the exit hooks and terminates the process with code.
func (in *Installer) Exit(code int) {
	in.RunExitHooks()
	in.exit(code)
}

var std = New()

// Install calls Install on the process Installer.
func Install(exitFn func(), handler func(os.Signal)) { std.Install(exitFn, handler) }

// RunExitHooks calls RunExitHooks on the process Installer.
func RunExitHooks() { std.RunExitHooks() }

// Exit calls Exit on the process Installer.
func Exit(code int) { std.Exit(code) }

// Stop calls Stop on the process Installer.
func Stop() { std.Stop() }
