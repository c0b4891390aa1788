package maths

import "errors"

// 运算错误定义，使用 errors.Is 判断类型
var (
	ErrInvalidMode     = errors.New("无效的构造模式")
	ErrDivisionByZero  = errors.New("除数的模为零")
	ErrInvalidArgument = errors.New("无效的参数")
	ErrInvalidOperand  = errors.New("无效的操作数")
)
