package systems

import (
	"testing"

	"github.com/decker502/scramble/pkg/components"
	"github.com/decker502/scramble/pkg/ecs"
	"github.com/decker502/scramble/pkg/entities"
)

func TestFlowLayoutMeasure(t *testing.T) {
	f := newTextFixture("ABC")
	f.layout.OriginX, f.layout.OriginY = 100, 50

	tests := []struct {
		name  string
		index int
		x     float64
	}{
		{"第一个字符", 0, 100},
		{"第二个字符", 1, 110},
		{"第三个字符", 2, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := f.layout.Measure(f.cells[tt.index])
			if box.X != tt.x || box.Y != 50 || box.Width != 10 || box.Height != 20 {
				t.Errorf("box = %+v, 期望 X=%v Y=50 10x20", box, tt.x)
			}
		})
	}

	if box := f.layout.Measure(ecs.EntityID(9999)); box.Width != 0 {
		t.Errorf("未知实体应返回零值, got %+v", box)
	}
}

func TestFlowLayoutCellBoxes(t *testing.T) {
	f := newTextFixture("STRADDLER")
	f.layout.OriginX, f.layout.OriginY = 100, 50
	f.measurer.Wide["D"] = true

	f.measurer.Calls = 0
	boxes := f.layout.CellBoxes()
	if f.measurer.Calls != len(f.cells) {
		t.Errorf("MeasureString 调用次数 = %d, 期望每个单元一次 (%d)", f.measurer.Calls, len(f.cells))
	}
	if len(boxes) != len(f.cells) {
		t.Fatalf("len(boxes) = %d, 期望 %d", len(boxes), len(f.cells))
	}
	for i, id := range f.cells {
		if want := f.layout.Measure(id); boxes[i] != want {
			t.Errorf("第 %d 个单元 box = %+v, Measure = %+v", i, boxes[i], want)
		}
	}
}

func TestFlowLayoutLockedWidthIgnoresDisplay(t *testing.T) {
	f := newTextFixture("AB")
	f.measurer.Wide["W"] = true

	cell, _ := ecs.GetComponent[*components.CharCellComponent](f.em, f.cells[0])
	cell.Display = "W"
	if x := f.layout.Measure(f.cells[1]).X; x != 20 {
		t.Fatalf("未锁定时宽字符应推移后续字符, X = %v", x)
	}

	lock := NewDimensionLockSystem(f.em, f.container, f.measurer, nil)
	lock.LockNow()
	if x := f.layout.Measure(f.cells[1]).X; x != 10 {
		t.Errorf("锁定后排版不应随显示内容变化, X = %v", x)
	}
	if w := f.layout.TextBox().Width; w != 20 {
		t.Errorf("TextBox 宽度 = %v, 期望 20", w)
	}
}

func TestFlowLayoutWaveOffset(t *testing.T) {
	f := newTextFixture("A")
	wave, _ := ecs.GetComponent[*components.WaveComponent](f.em, f.cells[0])
	wave.YPercent = 6

	box := f.layout.Measure(f.cells[0])
	if !approxEqual(box.Y, 1.2) {
		t.Errorf("6%% 波浪偏移应为 1.2px, got %v", box.Y)
	}
	if tb := f.layout.TextBox(); tb.Y != 0 {
		t.Errorf("TextBox 不含波浪偏移, got %v", tb.Y)
	}
}

func TestFlowLayoutLineBox(t *testing.T) {
	f := newTextFixture("ABCD")
	if box := f.layout.LineBox(); box.Width != 0 {
		t.Fatalf("没有装饰线时应返回零值, got %+v", box)
	}

	f.layout.LineGap = 4
	f.layout.LineHeight = 2
	f.layout.MinWidth = 500

	line := f.layout.LineBox()
	if line.Y != 24 || line.Width != 500 || line.Height != 2 {
		t.Errorf("LineBox = %+v, 期望 Y=24 W=500 H=2", line)
	}
	c := f.layout.ContainerBox()
	if c.Width != 500 || c.Height != 26 {
		t.Errorf("ContainerBox = %+v, 期望 500x26", c)
	}
}

func TestFlowLayoutUnsegmented(t *testing.T) {
	f := newTextFixture("HELLO")
	entities.RevertSplit(f.em, f.container)
	if w := f.layout.TextBox().Width; w != 50 {
		t.Errorf("未拆分文本宽度 = %v, 期望 50", w)
	}
}
