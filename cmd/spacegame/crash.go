package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// terminalGuard restores the terminal exactly once, from whichever path exits first
type terminalGuard struct {
	screen tcell.Screen
	once   sync.Once
}

func (g *terminalGuard) restore() {
	g.once.Do(func() {
		if g.screen != nil {
			g.screen.Fini()
		}
	})
}

// handleCrash restores the terminal and prints the panic with its stack trace
func (g *terminalGuard) handleCrash(r any) {
	if r == nil {
		return
	}
	g.restore()

	fmt.Fprintf(os.Stderr, "\n\x1b[31mSPACEGAME CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// guard wraps fn so a panic inside a goroutine still resets the terminal
func (g *terminalGuard) guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				g.handleCrash(r)
			}
		}()
		return fn()
	}
}
