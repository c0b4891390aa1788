package types

import (
	"testing"

	"complexcalc/maths"
)

// TestOpType 运算类型名称与编号
func TestOpType(t *testing.T) {
	for i, op := range OpTypes() {
		got, ok := GetNameType(op.String())
		if !ok || got != op {
			t.Errorf("GetNameType(%q) = %v, %v", op.String(), got, ok)
		}
		if op != OpExit && int(op) != i+1 {
			t.Errorf("menu number of %s = %d", op, op)
		}
	}
	if OpType(99).Valid() || OpType(99).String() != "unknown" {
		t.Errorf("OpType(99) should be unknown")
	}
	if !OpDiv.Binary() || OpRoot.Binary() || OpPow.Binary() {
		t.Errorf("Binary() mismatch")
	}
}

// TestEntry 历史记录格式化
func TestEntry(t *testing.T) {
	z := maths.NewRect(0, 2)
	e := NewEntry(OpPow, []maths.Complex{z}, 2, []maths.Complex{maths.NewRect(-4, 0)})
	if got := e.String(); got != "pow(0.0000 + 2.0000i, 2) = -4.0000 + 0.0000i" {
		t.Errorf("String() = %q", got)
	}
	e = NewEntry(OpSub, []maths.Complex{z, maths.NewRect(1, 1)}, 0, []maths.Complex{maths.NewRect(-1, 1)})
	if got := e.String(); got != "sub(0.0000 + 2.0000i, 1.0000 + 1.0000i) = -1.0000 + 1.0000i" {
		t.Errorf("String() = %q", got)
	}
	if p := PointOf(z); !p.Complex().Equal(z, 0) {
		t.Errorf("Point round trip = %+v", p)
	}
}
