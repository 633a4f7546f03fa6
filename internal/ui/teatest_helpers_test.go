package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/relwatch/internal/config"
	"github.com/justinpbarnett/relwatch/internal/update"
)

const waitDuration = 3 * time.Second

// appAdapter wraps the App (value receiver model) so tests can read the
// final state after the program exits.
type appAdapter struct {
	app App
}

func newTestAppAdapter(tb testing.TB, checker update.Checker) *appAdapter {
	tb.Helper()
	cfg := config.DefaultConfig()
	a := NewApp(&cfg, checker, nil)
	a.copyURL = func(string) error { return nil }
	return &appAdapter{app: a}
}

func (a *appAdapter) Init() tea.Cmd {
	return a.app.Init()
}

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string {
	return a.app.View()
}

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}
