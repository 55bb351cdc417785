package frame

// Mailbox holds at most one value; a newer Put replaces an unread one. Input
// handlers Put, and the frame driver Takes at the start of the next frame.
type Mailbox[T any] struct {
	v    T
	full bool
}

// Put stores v, dropping any unread value.
func (m *Mailbox[T]) Put(v T) {
	m.v = v
	m.full = true
}

// Take drains the slot.
func (m *Mailbox[T]) Take() (T, bool) {
	var zero T
	if !m.full {
		return zero, false
	}
	v := m.v
	m.v = zero
	m.full = false
	return v, true
}

// Full reports whether a value is waiting.
func (m *Mailbox[T]) Full() bool { return m.full }

// Clear drops any waiting value.
func (m *Mailbox[T]) Clear() {
	var zero T
	m.v = zero
	m.full = false
}
