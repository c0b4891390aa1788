package maths

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Complex 复数值
// 同时保存代数形式 (a + bi) 与极坐标形式 (r, θ)，构造后不再修改。
// 所有运算都返回新的值，可以在多个 goroutine 中并发使用。
type Complex struct {
	a, b     float64 // 实部, 虚部
	r, theta float64 // 模, 辐角(弧度)
}

// NewRect 通过代数形式创建复数
func NewRect(a, b float64) Complex {
	z := Complex{a: a, b: b, r: math.Hypot(a, b)}
	if z.r != 0 {
		z.theta = math.Atan2(b, a)
	}
	return z
}

// NewPolar 通过极坐标形式创建复数，theta 为弧度。
// 负的模折算为 (|r|, θ+π)，模为零时辐角取 0。
func NewPolar(r, theta float64) Complex {
	if r < 0 {
		r, theta = -r, theta+math.Pi
	}
	if r == 0 {
		theta = 0
	}
	sin, cos := math.Sincos(theta)
	return Complex{a: r * cos, b: r * sin, r: r, theta: theta}
}

// New 按模式创建复数
func New(mode Mode, v1, v2 float64) (Complex, error) {
	switch mode {
	case ModeRect:
		return NewRect(v1, v2), nil
	case ModePolar:
		return NewPolar(v1, v2), nil
	}
	return Complex{}, fmt.Errorf("%w: %d", ErrInvalidMode, mode)
}

// FromComplex128 从内置复数类型创建
func FromComplex128(c complex128) Complex { return NewRect(real(c), imag(c)) }

// Real 实部
func (z Complex) Real() float64 { return z.a }

// Imag 虚部
func (z Complex) Imag() float64 { return z.b }

// Abs 模
func (z Complex) Abs() float64 { return z.r }

// Arg 辐角(弧度)，运算结果不做归一化
func (z Complex) Arg() float64 { return z.theta }

// Degrees 辐角(角度)
func (z Complex) Degrees() float64 { return z.theta * 180 / math.Pi }

// Rect 代数形式坐标
func (z Complex) Rect() (a, b float64) { return z.a, z.b }

// Polar 极坐标形式
func (z Complex) Polar() (r, theta float64) { return z.r, z.theta }

// Complex128 转换为内置复数类型
func (z Complex) Complex128() complex128 { return complex(z.a, z.b) }

// IsZero 是否为零
func (z Complex) IsZero() bool { return z.r == 0 }

// IsFinite 所有分量都是有限值
func (z Complex) IsFinite() bool {
	for _, v := range [...]float64{z.a, z.b, z.r, z.theta} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Normalized 返回辐角归一化到 (-π, π] 的同一个复数
func (z Complex) Normalized() Complex {
	t := math.Remainder(z.theta, 2*math.Pi)
	if t <= -math.Pi {
		t += 2 * math.Pi
	}
	z.theta = t
	return z
}

// Equal 按代数形式逐分量比较，tol 同时作为绝对与相对容差
func (z Complex) Equal(w Complex, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(z.a, w.a, tol, tol) &&
		scalar.EqualWithinAbsOrRel(z.b, w.b, tol, tol)
}

// Binomial 代数形式显示 "a + bi" / "a - |b|i"
func (z Complex) Binomial() string {
	p := DisplayPrecision
	a, b := display(z.a, p), display(z.b, p)
	if b < 0 {
		return fmt.Sprintf("%.*f - %.*fi", p, a, p, -b)
	}
	return fmt.Sprintf("%.*f + %.*fi", p, a, p, b)
}

// PolarString 极坐标形式显示 "r * (cos(θ°) + i*sin(θ°))"
func (z Complex) PolarString() string {
	p := DisplayPrecision
	deg := display(z.Degrees(), p)
	return fmt.Sprintf("%.*f * (cos(%.*f°) + i*sin(%.*f°))", p, display(z.r, p), p, deg, p, deg)
}

// String 实现 fmt.Stringer
func (z Complex) String() string { return z.Binomial() }

// display 舍入后为零的值按 0 输出，避免出现 "-0.0000"
func display(v float64, prec int) float64 {
	if math.Abs(v) < 0.5*math.Pow10(-prec) {
		return 0
	}
	return v
}
