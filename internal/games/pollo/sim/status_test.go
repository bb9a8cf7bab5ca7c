package sim

import (
	"math/rand"
	"testing"
)

func TestCounterClamps(t *testing.T) {
	c := NewCounter(150, 0, 100)
	if c.Value() != 100 {
		t.Errorf("NewCounter(150) = %d, expected 100", c.Value())
	}
	if c.Sub(30) != 70 {
		t.Errorf("Sub(30) = %d, expected 70", c.Value())
	}
	if c.Sub(500) != 0 {
		t.Errorf("Sub(500) = %d, expected 0", c.Value())
	}
	if !c.Empty() {
		t.Error("counter at 0 should be empty")
	}
	if c.Add(1000) != 100 || !c.Full() {
		t.Errorf("Add(1000) = %d, expected full at 100", c.Value())
	}
}

func TestCounterRandomSequencesStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	energy := NewCounter(100, 0, 100)
	bottles := NewCounter(0, 0, 5)

	for i := 0; i < 1000; i++ {
		n := rng.Intn(40) - 20
		energy.Add(n)
		bottles.Add(rng.Intn(5) - 2)

		if energy.Value() < 0 || energy.Value() > 100 {
			t.Fatalf("energy out of bounds: %d", energy.Value())
		}
		if bottles.Value() < 0 || bottles.Value() > 5 {
			t.Fatalf("bottles out of bounds: %d", bottles.Value())
		}
	}
}

func TestBottlePercent(t *testing.T) {
	c := NewCounter(0, 0, 5)
	expected := []int{0, 20, 40, 60, 80, 100, 100}
	for i, want := range expected {
		if got := c.Percent(); got != want {
			t.Errorf("bottles=%d: Percent() = %d, expected %d", i, got, want)
		}
		c.Add(1)
	}
}

func TestCoinPercent(t *testing.T) {
	tests := []struct {
		coins, expected int
	}{
		{0, 0},
		{1, 0},
		{2, 20},
		{5, 40},
		{9, 80},
		{10, 100},
		{11, 100},
		{250, 100},
		{-3, 0},
	}

	for _, tc := range tests {
		if got := CoinPercent(tc.coins, 2, 5); got != tc.expected {
			t.Errorf("CoinPercent(%d) = %d, expected %d", tc.coins, got, tc.expected)
		}
	}
}
