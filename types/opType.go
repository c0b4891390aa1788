package types

import "fmt"

// OpType 运算类型
type OpType uint8

// 运算类型常量定义，数值与菜单编号一致
const (
	OpExit OpType = iota // 退出
	OpAdd                // 加法
	OpSub                // 减法
	OpMul                // 乘法
	OpDiv                // 除法
	OpPow                // 乘方
	OpRoot               // 开方
	OpCount              // 运算数量
)

// opTypeString 运算映射
var opTypeString = [OpCount]struct {
	Name  string // 名称
	Title string // 菜单显示
}{
	OpExit: {Name: "exit", Title: "退出"},
	OpAdd:  {Name: "add", Title: "两个复数相加"},
	OpSub:  {Name: "sub", Title: "两个复数相减"},
	OpMul:  {Name: "mul", Title: "两个复数相乘"},
	OpDiv:  {Name: "div", Title: "两个复数相除"},
	OpPow:  {Name: "pow", Title: "复数乘方"},
	OpRoot: {Name: "root", Title: "复数开 n 次方"},
}

// OpTypes 全部运算类型，按菜单顺序
func OpTypes() []OpType {
	return []OpType{OpAdd, OpSub, OpMul, OpDiv, OpPow, OpRoot, OpExit}
}

// Valid 是否为已知运算
func (t OpType) Valid() bool { return t < OpCount }

// String 返回运算名称
func (t OpType) String() string {
	if t.Valid() {
		return opTypeString[t].Name
	}
	return "unknown"
}

// Title 菜单显示文本
func (t OpType) Title() string {
	if t.Valid() {
		return opTypeString[t].Title
	}
	return fmt.Sprintf("未知运算(%d)", t)
}

// Binary 是否需要两个复数操作数
func (t OpType) Binary() bool {
	switch t {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// GetNameType 通过名称获取类型
func GetNameType(name string) (OpType, bool) {
	for t := OpType(0); t < OpCount; t++ {
		if opTypeString[t].Name == name {
			return t, true
		}
	}
	return 0, false
}
