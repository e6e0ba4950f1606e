package core

import "testing"

func TestInterval_Contains(t *testing.T) {
	interval := NewInterval(1, 5)

	tests := []struct {
		name     string
		value    float64
		expected bool
	}{
		{name: "inside", value: 3, expected: true},
		{name: "lower bound", value: 1, expected: true},
		{name: "upper bound", value: 5, expected: true},
		{name: "below", value: 0.999, expected: false},
		{name: "above", value: 5.001, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interval.Contains(tt.value); got != tt.expected {
				t.Errorf("Contains(%f): expected %t, got %t", tt.value, tt.expected, got)
			}
		})
	}
}

func TestInterval_ContainsEqualBounds(t *testing.T) {
	// Degenerate closed interval still contains its single point
	interval := NewInterval(2, 2)

	if !interval.Contains(2) {
		t.Error("Expected equal-bounds interval to contain its point")
	}
	if interval.Contains(2.0000001) {
		t.Error("Expected equal-bounds interval to reject other points")
	}
}

func TestInterval_Surrounds(t *testing.T) {
	interval := NewInterval(1, 5)

	if !interval.Surrounds(3) {
		t.Error("Expected Surrounds(3) to be true")
	}
	if interval.Surrounds(1) || interval.Surrounds(5) {
		t.Error("Expected bounds to not be surrounded")
	}
}

func TestInterval_Clamp(t *testing.T) {
	interval := NewInterval(1, 5)

	if got := interval.Clamp(0); got != 1 {
		t.Errorf("Clamp(0): expected 1, got %f", got)
	}
	if got := interval.Clamp(6); got != 5 {
		t.Errorf("Clamp(6): expected 5, got %f", got)
	}
	if got := interval.Clamp(3); got != 3 {
		t.Errorf("Clamp(3): expected 3, got %f", got)
	}
}

func TestInterval_Width(t *testing.T) {
	if got := NewInterval(1, 5).Width(); got != 4 {
		t.Errorf("Width: expected 4, got %f", got)
	}
}
