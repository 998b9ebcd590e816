package systems

import (
	"math"

	"github.com/decker502/scramble/pkg/ecs"
	"github.com/decker502/scramble/pkg/entities"
	"github.com/decker502/scramble/pkg/utils"
)

// fakeMeasurer 每个字形簇宽 10、高 20；Wide 中的字符宽 20
type fakeMeasurer struct {
	Wide  map[string]bool
	Calls int
}

func (m *fakeMeasurer) MeasureString(s string) (float64, float64) {
	m.Calls++
	if s == "" {
		return 0, 0
	}
	w := 0.0
	for _, g := range utils.SplitGraphemes(s) {
		if m.Wide[g] {
			w += 20
		} else {
			w += 10
		}
	}
	return w, 20
}

type textFixture struct {
	em        *ecs.EntityManager
	container *entities.TextContainer
	cells     []ecs.EntityID
	measurer  *fakeMeasurer
	layout    *FlowLayout
}

func newTextFixture(s string) *textFixture {
	em := ecs.NewEntityManager()
	container := entities.NewTextContainer(s)
	cells := entities.SplitText(em, container)
	measurer := &fakeMeasurer{Wide: map[string]bool{}}
	layout := NewFlowLayout(em, container, measurer)
	return &textFixture{em: em, container: container, cells: cells, measurer: measurer, layout: layout}
}

// cellCenter 返回第 i 个单元的中心（每个单元宽 10）
func (f *textFixture) cellCenter(i int) (float64, float64) {
	return f.layout.Measure(f.cells[i]).Center()
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
