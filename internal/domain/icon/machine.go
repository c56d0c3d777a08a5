package icon

// Region is a rectangular screen area in cell coordinates. The widget
// reports its rendered regions so outside presses can be detected
// without the machine knowing anything about layout.
type Region struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point falls inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Machine tracks the transient interaction state of one icon field
// widget instance: dialog visibility, search text, pagination, and
// hover. Nothing in here is persisted; the state dies with the widget.
//
// The picker and the configuration panel are independent surfaces and
// may be open at the same time. Closing the picker always clears the
// search text and resets the page so a reopen never shows stale
// pagination.
type Machine struct {
	pickerOpen   bool
	panelOpen    bool
	resetPending bool

	searchInput string // raw text as typed, not yet applied
	search      string // debounced text the filter actually uses
	page        int
	hovered     string
}

// NewMachine returns a machine in the fully closed state.
func NewMachine() *Machine {
	return &Machine{}
}

// PickerOpen reports whether the picker dialog is visible.
func (m *Machine) PickerOpen() bool { return m.pickerOpen }

// OpenPicker shows the picker dialog. Nothing is reset on entry;
// cleanup happens on close.
func (m *Machine) OpenPicker() {
	m.pickerOpen = true
}

// ClosePicker hides the picker dialog, clears both raw and applied
// search text, resets the page, and drops any hover.
func (m *Machine) ClosePicker() {
	m.pickerOpen = false
	m.searchInput = ""
	m.search = ""
	m.page = 0
	m.hovered = ""
}

// PanelOpen reports whether the configuration panel is visible.
func (m *Machine) PanelOpen() bool { return m.panelOpen }

// TogglePanel flips the configuration panel independently of the
// picker. Closing it also abandons a pending reset confirmation.
func (m *Machine) TogglePanel() {
	m.panelOpen = !m.panelOpen
	if !m.panelOpen {
		m.resetPending = false
	}
}

// ResetPending reports whether a reset confirmation is awaited.
func (m *Machine) ResetPending() bool { return m.resetPending }

// RequestReset arms the reset confirmation step.
func (m *Machine) RequestReset() {
	m.resetPending = true
}

// CancelReset abandons the pending reset without any other change.
func (m *Machine) CancelReset() {
	m.resetPending = false
}

// ConfirmReset resolves the confirmation. The caller is responsible
// for actually applying the reset action.
func (m *Machine) ConfirmReset() {
	m.resetPending = false
}

// SearchInput returns the raw search text as typed.
func (m *Machine) SearchInput() string { return m.searchInput }

// SetSearchInput records raw typed text. The filter is unaffected
// until the debounced text is applied.
func (m *Machine) SetSearchInput(s string) {
	m.searchInput = s
}

// Search returns the applied (debounced) search text.
func (m *Machine) Search() string { return m.search }

// ApplySearch installs debounced search text. When the applied text
// actually changes the page resets to 0; re-applying identical text
// keeps the current page.
func (m *Machine) ApplySearch(s string) bool {
	if s == m.search {
		return false
	}
	m.search = s
	m.page = 0
	return true
}

// Page returns the current zero-based page index.
func (m *Machine) Page() int { return m.page }

// SetPage jumps to a page, clamped to the valid range for pageCount.
func (m *Machine) SetPage(page, pageCount int) {
	m.page = ClampPage(page, pageCount)
}

// NextPage advances one page, clamped. At the last page it is a no-op.
func (m *Machine) NextPage(pageCount int) {
	m.SetPage(m.page+1, pageCount)
}

// PrevPage goes back one page, clamped. At page 0 it is a no-op.
func (m *Machine) PrevPage(pageCount int) {
	m.SetPage(m.page-1, pageCount)
}

// Hovered returns the icon name under the cursor, or "" when none.
func (m *Machine) Hovered() string { return m.hovered }

// Hover records which icon the cursor is over.
func (m *Machine) Hover(name string) {
	m.hovered = name
}

// ClearHover drops the hover state.
func (m *Machine) ClearHover() {
	m.hovered = ""
}

// PressOutside handles a pointer press at (x, y). While the picker is
// open, a press outside every given region dismisses it (with the
// usual close cleanup) and returns true. While closed, presses are
// ignored entirely; the dismissal logic only exists for the lifetime
// of the open dialog.
func (m *Machine) PressOutside(x, y int, inside ...Region) bool {
	if !m.pickerOpen {
		return false
	}
	for _, r := range inside {
		if r.Contains(x, y) {
			return false
		}
	}
	m.ClosePicker()
	return true
}
