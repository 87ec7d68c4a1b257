package core

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}
}

func TestRegisterScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	RegisterScreen(screen)
	crashMu.Lock()
	assert.Equal(t, screen, crashScreen)
	crashMu.Unlock()
	RegisterScreen(nil)
}

func TestHandleCrashIgnoresNil(t *testing.T) {
	assert.NotPanics(t, func() { HandleCrash(nil) })
}
