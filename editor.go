package builder

import (
	"fmt"
	"sync"
	"time"

	"github.com/romdo/go-debounce"

	"github.com/superme-Sophie/manus-dynamic-section/page"
)

// chartDebounceWait is the quiet period that coalesces rapid chart data
// edits into a single working-copy update.
const chartDebounceWait = 300 * time.Millisecond

// ErrNoSession is returned by editor operations when no edit session is
// open.
var ErrNoSession = fmt.Errorf("builder: no section is being edited")

// Editor is the single edit slot: Closed between edits, Open over
// exactly one section's working copy. Only one session can be open at a
// time; opening a new one implicitly discards the previous working
// copy, matching an editor overlay that is replaced on screen.
//
// Chart data edits propagate through a debouncer so the preview does
// not recompute per keystroke; the pending timer is invalidated when
// the session ends, so a stale update can never land after Save or
// Cancel.
type Editor struct {
	mu      sync.Mutex
	open    bool
	section page.Section
	draft   page.Draft

	pendingChart page.ChartData
	debounced    func()
	cancelWait   func()
}

// NewEditor returns a closed editor.
func NewEditor() *Editor {
	return &Editor{}
}

// Open starts an edit session over the section, seeding the working
// copy from its current content.
func (e *Editor) Open(sec page.Section) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopDebounce()
	e.open = true
	e.section = sec
	e.draft = page.NewDraft(sec)
	e.debounced, e.cancelWait = debounce.New(chartDebounceWait, e.applyPendingChart)
}

// IsOpen reports whether a session is active.
func (e *Editor) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.open
}

// Editing returns the id of the section under edit, or "".
func (e *Editor) Editing() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ""
	}
	return e.section.ID
}

// Draft returns a snapshot of the working copy.
func (e *Editor) Draft() (page.Draft, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return page.Draft{}, ErrNoSession
	}
	return e.draft, nil
}

// Mutate applies fn to the working copy under the session lock. Used by
// the form handlers for title, kind, card, and image edits.
func (e *Editor) Mutate(fn func(d *page.Draft)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrNoSession
	}
	fn(&e.draft)
	return nil
}

// UpdateChartData records a chart dataset edit and schedules the
// debounced propagation into the working copy. Rapid calls within the
// quiet window coalesce; the last write wins.
func (e *Editor) UpdateChartData(data page.ChartData) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrNoSession
	}
	e.pendingChart = data
	e.debounced()
	return nil
}

func (e *Editor) applyPendingChart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return
	}
	e.draft.ChartData = e.pendingChart
}

// Save closes the session and returns the committed section: working
// copy packed into canonical content, id and order untouched. The
// caller persists it.
func (e *Editor) Save() (page.Section, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return page.Section{}, ErrNoSession
	}
	e.stopDebounce()
	e.open = false
	return e.draft.Apply(e.section), nil
}

// Cancel closes the session and discards the working copy.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopDebounce()
	e.open = false
}

// stopDebounce invalidates any pending chart propagation. Callers hold
// e.mu.
func (e *Editor) stopDebounce() {
	if e.cancelWait != nil {
		e.cancelWait()
		e.cancelWait = nil
		e.debounced = nil
	}
}
