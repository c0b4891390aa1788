package types

import (
	"fmt"
	"strings"
	"time"

	"complexcalc/maths"
)

// Point 平面上的一个点，绘图只需要代数形式坐标与标签
type Point struct {
	A     float64 `json:"a"`     // 实部
	B     float64 `json:"b"`     // 虚部
	Label string  `json:"label"` // 显示标签
}

// PointOf 由复数值得到平面点
func PointOf(v maths.Value) Point {
	a, b := v.Rect()
	return Point{A: a, B: b, Label: v.Binomial()}
}

// Complex 还原为复数
func (p Point) Complex() maths.Complex { return maths.NewRect(p.A, p.B) }

// Entry 一次计算的历史记录
type Entry struct {
	ID       int64     `json:"id"`       // 记录编号
	Session  string    `json:"session"`  // 会话标识
	Op       OpType    `json:"op"`       // 运算类型
	Operands []Point   `json:"operands"` // 操作数
	Exponent float64   `json:"exponent"` // 乘方指数或开方次数
	Results  []Point   `json:"results"`  // 结果
	Created  time.Time `json:"created"`  // 时间
}

// NewEntry 创建历史记录
func NewEntry(op OpType, operands []maths.Complex, exponent float64, results []maths.Complex) Entry {
	e := Entry{
		Op:       op,
		Exponent: exponent,
		Operands: make([]Point, len(operands)),
		Results:  make([]Point, len(results)),
		Created:  time.Now(),
	}
	for i, z := range operands {
		e.Operands[i] = PointOf(z)
	}
	for i, z := range results {
		e.Results[i] = PointOf(z)
	}
	return e
}

// String 格式化输出
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Op.String())
	sb.WriteString("(")
	for i, p := range e.Operands {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Label)
	}
	if !e.Op.Binary() {
		fmt.Fprintf(&sb, ", %g", e.Exponent)
	}
	sb.WriteString(") = ")
	for i, p := range e.Results {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(p.Label)
	}
	return sb.String()
}
