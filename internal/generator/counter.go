package generator

// counterSet holds the per-key auto-increment counters for one generation
// session. Keys are field names, except studentID/employeeID which use fixed
// semantic keys so a user field named the same way stays independent.
type counterSet struct {
	counters map[string]int
}

func newCounterSet() *counterSet {
	return &counterSet{counters: make(map[string]int)}
}

// next returns the counter's current value and advances it by step. The
// first call for a key yields start.
func (c *counterSet) next(key string, start, step int) int {
	current, ok := c.counters[key]
	if !ok {
		current = start
	}
	c.counters[key] = current + step
	return current
}
