package utils

import "testing"

func TestPointerTrackerObserve(t *testing.T) {
	var tracker PointerTracker

	steps := []struct {
		name  string
		x, y  int
		moved bool
	}{
		{"首次观察视为移动", 10, 10, true},
		{"位置不变", 10, 10, false},
		{"水平移动", 11, 10, true},
		{"垂直移动", 11, 12, true},
		{"再次静止", 11, 12, false},
	}

	for _, s := range steps {
		if got := tracker.Observe(s.x, s.y); got != s.moved {
			t.Errorf("%s: Observe(%d, %d) = %v, 期望 %v", s.name, s.x, s.y, got, s.moved)
		}
	}
}
