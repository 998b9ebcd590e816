package components

import "testing"

func TestCharCellRestore(t *testing.T) {
	cell := &CharCellComponent{Original: "A", Display: "A"}
	if cell.IsGarbled() {
		t.Fatal("拆分后不应处于乱码状态")
	}

	cell.Display = "X"
	if !cell.IsGarbled() {
		t.Fatal("替换后应处于乱码状态")
	}

	cell.Restore()
	if cell.Display != "A" || cell.IsGarbled() {
		t.Errorf("Restore 后 Display = %q", cell.Display)
	}
}

func TestScrambleStateString(t *testing.T) {
	tests := []struct {
		state    ScrambleState
		expected string
	}{
		{ScrambleIdle, "Idle"},
		{ScrambleScrambling, "Scrambling"},
		{ScrambleSettling, "Settling"},
		{ScrambleState(42), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.state.String(); got != tt.expected {
				t.Errorf("String() = %q, 期望 %q", got, tt.expected)
			}
		})
	}
}
