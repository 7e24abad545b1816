package search

// Debouncer coalesces a burst of raw values into the last one.
// Every Push starts a new generation; only an elapsed timer carrying the
// current generation commits.
type Debouncer struct {
	gen     uint64
	pending bool
	value   string
}

// Push records a new raw value and returns the generation its timer must carry
func (d *Debouncer) Push(raw string) uint64 {
	d.gen++
	d.pending = true
	d.value = raw
	return d.gen
}

// Elapsed commits the pending value if gen is the latest generation
func (d *Debouncer) Elapsed(gen uint64) (string, bool) {
	if !d.pending || gen != d.gen {
		return "", false
	}
	d.pending = false
	return d.value, true
}

// Cancel drops the pending value; outstanding timers become stale
func (d *Debouncer) Cancel() {
	d.gen++
	d.pending = false
	d.value = ""
}

// Pending reports whether a value is waiting for its timer
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Gen returns the current generation
func (d *Debouncer) Gen() uint64 {
	return d.gen
}
