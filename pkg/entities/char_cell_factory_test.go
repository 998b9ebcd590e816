package entities

import (
	"strings"
	"testing"

	"github.com/decker502/scramble/pkg/components"
	"github.com/decker502/scramble/pkg/ecs"
)

func originals(t *testing.T, em *ecs.EntityManager, ids []ecs.EntityID) []string {
	t.Helper()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		cell, ok := ecs.GetComponent[*components.CharCellComponent](em, id)
		if !ok {
			t.Fatalf("实体 %d 缺少 CharCellComponent", id)
		}
		out = append(out, cell.Original)
	}
	return out
}

// TestSplitTextRoundTrip 拆分后按顺序拼接原始内容应还原原文
func TestSplitTextRoundTrip(t *testing.T) {
	inputs := []string{
		"STRADDLER",
		"High Stakes",
		"éclair",
		"扰动文字",
		"A\U0001F1EB\U0001F1F7B",
		" ",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			em := ecs.NewEntityManager()
			container := NewTextContainer(input)

			ids := SplitText(em, container)
			parts := originals(t, em, ids)
			if strings.Join(parts, "") != input {
				t.Errorf("拼接结果 %q != 原文 %q", strings.Join(parts, ""), input)
			}

			for i, id := range ids {
				cell, _ := ecs.GetComponent[*components.CharCellComponent](em, id)
				if cell.Index != i {
					t.Errorf("第 %d 个单元 Index = %d", i, cell.Index)
				}
				if cell.Display != cell.Original {
					t.Errorf("拆分后显示内容 %q 应等于原始内容 %q", cell.Display, cell.Original)
				}
				if !ecs.HasComponent[*components.ScrambleComponent](em, id) || !ecs.HasComponent[*components.WaveComponent](em, id) {
					t.Errorf("单元 %d 缺少扰动或波浪组件", i)
				}
			}
		})
	}
}

func TestSplitTextCellCount(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := SplitText(em, NewTextContainer("STRADDLER"))
	if len(ids) != 9 {
		t.Errorf("STRADDLER 应拆分为 9 个单元, got %d", len(ids))
	}
}

func TestSplitTextEmptyAndMissing(t *testing.T) {
	em := ecs.NewEntityManager()

	if ids := SplitText(em, NewTextContainer("")); len(ids) != 0 {
		t.Errorf("空文本应返回空序列, got %d", len(ids))
	}

	missing := &TextContainer{}
	if ids := SplitText(em, missing); len(ids) != 0 {
		t.Errorf("没有文本节点时应返回空序列, got %d", len(ids))
	}
	if missing.Segmented() {
		t.Error("没有文本节点的容器不应进入拆分状态")
	}

	if ids := SplitText(em, nil); ids == nil || len(ids) != 0 {
		t.Error("nil 容器应返回空切片")
	}
	if em.EntityCount() != 0 {
		t.Errorf("不应创建任何实体, EntityCount = %d", em.EntityCount())
	}
}

// TestRevertSplit 拆分再恢复应回到拆分前的状态
func TestRevertSplit(t *testing.T) {
	em := ecs.NewEntityManager()
	container := NewTextContainer("STRADDLER")

	ids := SplitText(em, container)
	// 模拟扰动中途的显示内容
	cell, _ := ecs.GetComponent[*components.CharCellComponent](em, ids[2])
	cell.Display = "X"

	// 其他模块标记待删除的实体不归 RevertSplit 管
	other := em.CreateEntity()
	em.DestroyEntity(other)

	RevertSplit(em, container)

	if !em.Exists(other) {
		t.Error("RevertSplit 不应清理无关的待删除实体")
	}
	for _, id := range ids {
		if !em.Exists(id) {
			t.Errorf("实体 %d 应在调用方清理前保持待删除状态", id)
		}
	}
	em.RemoveMarkedEntities()

	if container.Segmented() {
		t.Error("恢复后容器不应处于拆分状态")
	}
	if container.Text() != "STRADDLER" {
		t.Errorf("恢复后文本 = %q, 期望 STRADDLER", container.Text())
	}
	if len(container.Cells()) != 0 {
		t.Error("恢复后不应保留字符单元")
	}
	for _, id := range ids {
		if em.Exists(id) {
			t.Errorf("实体 %d 应被销毁", id)
		}
	}

	// 重复恢复无副作用
	RevertSplit(em, container)
}

func TestSplitTextResegment(t *testing.T) {
	em := ecs.NewEntityManager()
	container := NewTextContainer("AB")
	first := SplitText(em, container)

	container.Node.Text = "XYZ"
	second := SplitText(em, container)
	em.RemoveMarkedEntities()

	if len(second) != 3 {
		t.Fatalf("重新拆分后应有 3 个单元, got %d", len(second))
	}
	for _, id := range first {
		if em.Exists(id) {
			t.Errorf("旧单元 %d 应在重新拆分时销毁", id)
		}
	}
	if em.EntityCount() != 3 {
		t.Errorf("EntityCount = %d, 期望 3", em.EntityCount())
	}
}

func TestNewTrailEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewTrailEntity(em, 60, 2)

	trail, ok := ecs.GetComponent[*components.TrailComponent](em, id)
	if !ok {
		t.Fatal("拖尾实体缺少 TrailComponent")
	}
	if trail.Left != 0 || trail.Opacity != 1 || trail.Width != 60 || trail.Height != 2 {
		t.Errorf("拖尾初始状态错误: %+v", trail)
	}
}
