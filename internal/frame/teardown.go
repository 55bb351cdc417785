package frame

// Teardown collects cleanup functions for a demo and runs them once, newest first.
type Teardown struct {
	fns []func()
}

// Add registers fn.
func (t *Teardown) Add(fn func()) {
	if fn != nil {
		t.fns = append(t.fns, fn)
	}
}

// Run calls the registered functions in reverse order and forgets them.
func (t *Teardown) Run() {
	for i := len(t.fns) - 1; i >= 0; i-- {
		t.fns[i]()
	}
	t.fns = nil
}

// Len returns the number of pending cleanups.
func (t *Teardown) Len() int { return len(t.fns) }
