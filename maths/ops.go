package maths

import (
	"fmt"
	"math"
)

// 加减法在代数形式下计算，乘除、乘方与开方在极坐标形式下计算，
// 另一种形式由构造函数重新推导。

// Add 加法 (a1+a2) + (b1+b2)i
func Add(z1, z2 Complex) Complex {
	return NewRect(z1.a+z2.a, z1.b+z2.b)
}

// Sub 减法 (a1-a2) + (b1-b2)i
func Sub(z1, z2 Complex) Complex {
	return NewRect(z1.a-z2.a, z1.b-z2.b)
}

// Mul 乘法 r1·r2 ∠ θ1+θ2
func Mul(z1, z2 Complex) Complex {
	return NewPolar(z1.r*z2.r, z1.theta+z2.theta)
}

// Div 除法 r1/r2 ∠ θ1-θ2
func Div(z1, z2 Complex) (Complex, error) {
	if z2.r == 0 {
		return Complex{}, fmt.Errorf("%w: (%s) / (%s)", ErrDivisionByZero, z1, z2)
	}
	return NewPolar(z1.r/z2.r, z1.theta-z2.theta), nil
}

// Pow 乘方（棣莫弗公式）r^n ∠ θ·n，n 可以是任意实数
func Pow(z Complex, n float64) (Complex, error) {
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		return Complex{}, fmt.Errorf("%w: 指数 %v", ErrInvalidOperand, n)
	case !z.IsFinite():
		return Complex{}, fmt.Errorf("%w: 底数 %s", ErrInvalidOperand, z)
	case z.r == 0 && n < 0:
		return Complex{}, fmt.Errorf("%w: 零的负数次幂 %v", ErrInvalidOperand, n)
	}
	w := NewPolar(math.Pow(z.r, n), z.theta*n)
	if !w.IsFinite() {
		return Complex{}, fmt.Errorf("%w: (%s)^%v 超出范围", ErrInvalidOperand, z, n)
	}
	return w, nil
}

// Root 开 n 次方，按 k = 0..n-1 顺序返回全部 n 个根
// r^(1/n) ∠ (θ + 2πk)/n
func Root(z Complex, n int) ([]Complex, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: 开方次数必须为正整数, 得到 %d", ErrInvalidArgument, n)
	}
	if !z.IsFinite() {
		return nil, fmt.Errorf("%w: 被开方数 %s", ErrInvalidOperand, z)
	}
	fn := float64(n)
	r := math.Pow(z.r, 1/fn)
	roots := make([]Complex, n)
	for k := range roots {
		roots[k] = NewPolar(r, (z.theta+2*math.Pi*float64(k))/fn)
	}
	return roots, nil
}
