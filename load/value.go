package load

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"complexcalc/maths"
	"complexcalc/types"
)

// ErrSyntax 输入无法解析
var ErrSyntax = errors.New("无法解析的输入")

// Value 表示一个输入值
type Value struct {
	Value string // 原始值
	Line  int    // 行号
}

// errorAtLine 附加行号
func (value Value) errorAtLine(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	if value.Line > 0 {
		return fmt.Errorf("第 %d 行: %w", value.Line, err)
	}
	return err
}

// ParseInt 解析整数
func (value Value) ParseInt(defaultValue int) int {
	if val, err := value.Int(); err == nil {
		return val
	}
	return defaultValue
}

// ParseFloat64 解析64位浮点数
func (value Value) ParseFloat64(defaultValue float64) float64 {
	if val, err := value.Float(); err == nil {
		return val
	}
	return defaultValue
}

// Int 解析整数，失败返回错误
func (value Value) Int() (int, error) {
	val, err := strconv.Atoi(strings.TrimSpace(value.Value))
	if err != nil {
		return 0, value.errorAtLine("%w: 需要整数, 得到 %q", ErrSyntax, value.Value)
	}
	return val, nil
}

// Float 解析有限浮点数，失败返回错误
func (value Value) Float() (float64, error) {
	val, err := parseFinite(strings.TrimSpace(value.Value))
	if err != nil {
		return 0, value.errorAtLine("%w: 需要实数, 得到 %q", ErrSyntax, value.Value)
	}
	return val, nil
}

// Complex 解析复数
func (value Value) Complex() (maths.Complex, error) {
	z, err := ParseComplex(value.Value)
	if err != nil {
		return maths.Complex{}, value.errorAtLine("%w", err)
	}
	return z, nil
}

// Choice 解析菜单选项，可以是编号或运算名称
func (value Value) Choice() (types.OpType, error) {
	s := strings.ToLower(strings.TrimSpace(value.Value))
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n < int(types.OpCount) {
			return types.OpType(n), nil
		}
	} else if t, ok := types.GetNameType(s); ok {
		return t, nil
	}
	return 0, value.errorAtLine("%w: 无效的选项 %q", ErrSyntax, value.Value)
}

// parseFinite 拒绝 NaN 与无穷大
func parseFinite(s string) (float64, error) {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, strconv.ErrRange
	}
	return val, nil
}
