package sim

// Counter is an integer clamped to [min, max]. Operations never fail;
// values outside the bounds saturate.
type Counter struct {
	value int
	min   int
	max   int
}

// NewCounter creates a counter holding value clamped into [min, max].
func NewCounter(value, min, max int) Counter {
	if max < min {
		max = min
	}
	c := Counter{min: min, max: max}
	c.Set(value)
	return c
}

// Value returns the current value.
func (c Counter) Value() int { return c.value }

// Max returns the upper bound.
func (c Counter) Max() int { return c.max }

// Set stores v clamped to the bounds.
func (c *Counter) Set(v int) {
	c.value = min(max(v, c.min), c.max)
}

// Add increases the counter by n and returns the new value.
func (c *Counter) Add(n int) int {
	c.Set(c.value + n)
	return c.value
}

// Sub decreases the counter by n and returns the new value.
func (c *Counter) Sub(n int) int {
	c.Set(c.value - n)
	return c.value
}

// Full reports whether the counter sits at its upper bound.
func (c Counter) Full() bool { return c.value == c.max }

// Empty reports whether the counter sits at its lower bound.
func (c Counter) Empty() bool { return c.value == c.min }

// Percent maps the value linearly onto 0..100.
func (c Counter) Percent() int {
	span := c.max - c.min
	if span <= 0 {
		return 0
	}
	return (c.value - c.min) * 100 / span
}

// CoinPercent maps a coin count onto a stepped bar: one step per
// perStep coins, capped at steps. With 2 and 5: 0,20,40,60,80,100.
func CoinPercent(coins, perStep, steps int) int {
	if perStep <= 0 || steps <= 0 || coins <= 0 {
		return 0
	}
	return min(coins/perStep, steps) * 100 / steps
}
