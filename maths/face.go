package maths

import (
	"fmt"
	"strings"
)

// 补充必要常量（浮点精度阈值）
const Epsilon = 1e-12

// DisplayPrecision 显示时保留的小数位数
var DisplayPrecision = 4

// Mode 复数构造模式
type Mode uint8

// 构造模式常量定义
const (
	ModeUnknown Mode = iota // 未知模式
	ModeRect                // 代数形式 (a, b)
	ModePolar               // 极坐标形式 (r, θ)
)

// String 返回模式名称
func (m Mode) String() string {
	switch m {
	case ModeRect:
		return "rect"
	case ModePolar:
		return "polar"
	}
	return "unknown"
}

// ParseMode 通过名称获取构造模式
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rect", "binomial", "binomica", "rectangular":
		return ModeRect, nil
	case "polar":
		return ModePolar, nil
	}
	return ModeUnknown, fmt.Errorf("%w: %q", ErrInvalidMode, name)
}

// Value 复数值接口
// 绘图与记录只依赖这里的坐标和显示字符串
type Value interface {
	Rect() (a, b float64)      // 代数形式坐标
	Polar() (r, theta float64) // 极坐标形式
	Binomial() string          // 代数形式显示
	PolarString() string       // 极坐标形式显示
}
