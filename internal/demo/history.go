package demo

// history is a fixed-size circular buffer of recent samples for plotting.
type history struct {
	buf  []float64
	size int
	w    int // write position
	len  int // current fill level
}

func newHistory(size int) *history {
	return &history{
		buf:  make([]float64, size),
		size: size,
	}
}

// push appends v, overwriting the oldest sample when full.
func (h *history) push(v float64) {
	h.buf[h.w] = v
	h.w = (h.w + 1) % h.size
	if h.len < h.size {
		h.len++
	}
}

// last returns up to n most recent samples, oldest first.
func (h *history) last(n int) []float64 {
	if n > h.len {
		n = h.len
	}
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	start := (h.w - n + h.size) % h.size
	for i := range n {
		out[i] = h.buf[(start+i)%h.size]
	}
	return out
}

func (h *history) clear() {
	h.w = 0
	h.len = 0
}
