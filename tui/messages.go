// ABOUTME: Bubble Tea message types used in the TUI message loop.
// ABOUTME: TickMsg carries the autoplay generation it was scheduled for so stale ticks can be dropped.
package tui

import "time"

// TickMsg is sent once per autoplay interval.
type TickMsg struct {
	Time       time.Time
	Generation uint64
}
