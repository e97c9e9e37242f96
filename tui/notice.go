// ABOUTME: NoticeModel is the blocking dialog shown when a line fails validation.
// ABOUTME: It names the failing line and slots and stays up until the user acknowledges it with Enter.
package tui

import (
	"fmt"
	"strings"

	"github.com/2389-research/arraylab/engine"
)

// NoticeModel renders a modal validation notice. While active, the AppModel
// routes every key here and nothing else reacts.
type NoticeModel struct {
	failure *engine.ValidationFailure
	source  string
	active  bool
}

// NewNoticeModel creates an inactive notice.
func NewNoticeModel() NoticeModel {
	return NoticeModel{}
}

// SetActive shows the notice for failure. source is the failing line as it
// reads in the listing.
func (m *NoticeModel) SetActive(failure *engine.ValidationFailure, source string) {
	m.failure = failure
	m.source = source
	m.active = true
}

// Dismiss hides the notice.
func (m *NoticeModel) Dismiss() {
	m.failure = nil
	m.source = ""
	m.active = false
}

// IsActive returns whether the notice is visible.
func (m *NoticeModel) IsActive() bool {
	return m.active
}

// View renders the notice. Returns an empty string when inactive.
func (m NoticeModel) View() string {
	if !m.active || m.failure == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[!] %s\n", m.failure.Message))
	b.WriteString(fmt.Sprintf("\nline %d: %s\n", m.failure.Line+1, m.source))

	slots := make([]string, len(m.failure.Slots))
	for i, s := range m.failure.Slots {
		slots[i] = fmt.Sprintf("%d", s)
	}
	b.WriteString(fmt.Sprintf("slot: %s\n", strings.Join(slots, ", ")))
	b.WriteString("\nFix the value, then step again. Press Enter to continue.")

	return NoticeStyle.Render(b.String())
}
