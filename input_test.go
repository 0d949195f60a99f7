package main

import "testing"

func TestGestureDirection(t *testing.T) {
	tests := []struct {
		name     string
		start    Point
		end      Point
		expected int
	}{
		{"Rightward drag", Point{X: 100, Y: 100}, Point{X: 220, Y: 110}, 1},
		{"Leftward drag", Point{X: 300, Y: 100}, Point{X: 180, Y: 90}, -1},
		{"Exactly at threshold", Point{X: 0, Y: 0}, Point{X: gestureThreshold, Y: 0}, 1},
		{"Too short", Point{X: 100, Y: 100}, Point{X: 130, Y: 100}, 0},
		{"Mostly vertical", Point{X: 100, Y: 100}, Point{X: 160, Y: 300}, 0},
		{"Diagonal tie", Point{X: 0, Y: 0}, Point{X: 60, Y: 60}, 0},
		{"No movement", Point{X: 50, Y: 50}, Point{X: 50, Y: 50}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gestureDirection(tt.start, tt.end); got != tt.expected {
				t.Errorf("gestureDirection(%+v, %+v) = %d, want %d", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}
