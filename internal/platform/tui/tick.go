// Package tui provides the Bubble Tea front-end for the flyer: the play
// screen, the course picker used over SSH, and the Wish server itself.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. ID names the play model
// whose loop produced it, so a loop left over from a previous session
// cannot drive the next one.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastLoopID atomic.Int64

// nextLoopID returns a fresh tick loop ID.
func nextLoopID() int64 {
	return lastLoopID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(id int64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
