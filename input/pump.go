package input

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// Pump reads events from poll until it returns nil, ctx is done, or handle returns false
// poll is normally tcell.Screen.PollEvent, which returns nil once the screen is finalised
func Pump(ctx context.Context, poll func() tcell.Event, m *Machine, handle func(Intent) bool) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		ev := poll()
		if ev == nil {
			return nil
		}
		intent := m.Process(ev)
		if intent == nil {
			continue
		}
		if !handle(*intent) {
			return nil
		}
	}
}
