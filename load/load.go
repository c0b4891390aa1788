package load

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"complexcalc/maths"
	"complexcalc/types"
)

// Command 脚本中的一条计算命令
type Command struct {
	Op       types.OpType    // 运算类型
	Operands []maths.Complex // 操作数
	Exponent float64         // 乘方指数或开方次数
	Line     int             // 行号
}

// LoadString 加载计算脚本。
func LoadString(s string) ([]Command, error) {
	return LoadCommands(strings.NewReader(s))
}

// LoadFile 加载计算脚本文件。
func LoadFile(filename string) ([]Command, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadCommands(file)
}

// LoadCommands 加载计算脚本。
// 每行一条命令，字段以分号分隔:
//
//	add; 3+4i; 1-2i
//	pow; 2∠45; 3
//	root; 1; 4
//
// 以 # 开头的行为注释。
func LoadCommands(r io.Reader) (cmds []Command, err error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		cmd, err := parseCommand(fields, lineNum)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, scanner.Err()
}

// parseCommand 解析单条命令
func parseCommand(fields []string, lineNum int) (cmd Command, err error) {
	cmd.Line = lineNum
	if cmd.Op, err = (Value{Value: fields[0], Line: lineNum}).Choice(); err != nil {
		return cmd, err
	}
	if cmd.Op == types.OpExit {
		return cmd, fmt.Errorf("第 %d 行: 脚本中不能使用 %s", lineNum, cmd.Op)
	}
	if len(fields) != 3 {
		return cmd, fmt.Errorf("第 %d 行: 运算 %s 需要 2 个参数, 得到 %d", lineNum, cmd.Op, len(fields)-1)
	}
	z, err := Value{Value: fields[1], Line: lineNum}.Complex()
	if err != nil {
		return cmd, err
	}
	cmd.Operands = append(cmd.Operands, z)
	second := Value{Value: fields[2], Line: lineNum}
	switch cmd.Op {
	case types.OpPow:
		cmd.Exponent, err = second.Float()
	case types.OpRoot:
		var n int
		n, err = second.Int()
		if err == nil && n > types.MaxRootDegree {
			err = fmt.Errorf("第 %d 行: %w: 开方次数不能超过 %d", lineNum, ErrSyntax, types.MaxRootDegree)
		}
		cmd.Exponent = float64(n)
	default:
		z, err = second.Complex()
		cmd.Operands = append(cmd.Operands, z)
	}
	return cmd, err
}
