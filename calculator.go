package complexcalc

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"complexcalc/load"
	"complexcalc/maths"
	"complexcalc/plane"
	"complexcalc/types"
)

// History 计算历史存储
type History interface {
	Save(e types.Entry) (int64, error)
}

// Calculator 交互式复数计算器
type Calculator struct {
	in      *bufio.Scanner
	out     io.Writer
	line    int
	Record  *plane.Record // 本次运行的记录，可为空
	History History       // 持久化存储，可为空
	Logger  *slog.Logger
}

// NewCalculator 初始化
func NewCalculator(r io.Reader, w io.Writer) *Calculator {
	return &Calculator{
		in:     bufio.NewScanner(r),
		out:    w,
		Record: plane.NewRecord(),
		Logger: slog.Default(),
	}
}

// Calculate 执行一次运算
// 二元运算使用 operands[0], operands[1]；乘方与开方使用 operands[0] 与 exponent
func Calculate(op types.OpType, operands []maths.Complex, exponent float64) ([]maths.Complex, error) {
	need := 1
	if op.Binary() {
		need = 2
	}
	if len(operands) != need {
		return nil, fmt.Errorf("%w: 运算 %s 需要 %d 个复数, 得到 %d", maths.ErrInvalidArgument, op, need, len(operands))
	}
	switch op {
	case types.OpAdd:
		return []maths.Complex{maths.Add(operands[0], operands[1])}, nil
	case types.OpSub:
		return []maths.Complex{maths.Sub(operands[0], operands[1])}, nil
	case types.OpMul:
		return []maths.Complex{maths.Mul(operands[0], operands[1])}, nil
	case types.OpDiv:
		z, err := maths.Div(operands[0], operands[1])
		if err != nil {
			return nil, err
		}
		return []maths.Complex{z}, nil
	case types.OpPow:
		z, err := maths.Pow(operands[0], exponent)
		if err != nil {
			return nil, err
		}
		return []maths.Complex{z}, nil
	case types.OpRoot:
		if exponent != math.Trunc(exponent) {
			return nil, fmt.Errorf("%w: 开方次数必须为整数, 得到 %v", maths.ErrInvalidArgument, exponent)
		}
		if exponent < 1 || exponent > float64(types.MaxRootDegree) {
			return nil, fmt.Errorf("%w: 开方次数必须在 1 到 %d 之间, 得到 %v", maths.ErrInvalidArgument, types.MaxRootDegree, exponent)
		}
		return maths.Root(operands[0], int(exponent))
	}
	return nil, fmt.Errorf("%w: 未知运算 %s", maths.ErrInvalidArgument, op)
}

// Run 菜单主循环，输入 0 或输入结束时返回
func (c *Calculator) Run() error {
	for {
		c.menu()
		text, ok := c.prompt("你的选择: ")
		if !ok {
			return c.in.Err()
		}
		op, err := load.Value{Value: text, Line: c.line}.Choice()
		if err != nil {
			fmt.Fprintln(c.out, "选项无效，请重试。")
			continue
		}
		if op == types.OpExit {
			fmt.Fprintln(c.out, "再见!")
			return nil
		}
		fmt.Fprintf(c.out, "\n== %s ==\n", op.Title())
		operands, exponent, ok, err := c.readOperands(op)
		if !ok {
			return c.in.Err()
		}
		if err != nil {
			fmt.Fprintf(c.out, "输入错误: %v\n", err)
			continue
		}
		c.execute(op, operands, exponent)
	}
}

// RunCommands 依次执行脚本命令，单条命令失败不影响后续命令
// 返回失败的命令数量
func (c *Calculator) RunCommands(cmds []load.Command) (failed int) {
	for _, cmd := range cmds {
		fmt.Fprintf(c.out, "\n== 第 %d 行: %s ==\n", cmd.Line, cmd.Op.Title())
		if !c.execute(cmd.Op, cmd.Operands, cmd.Exponent) {
			failed++
		}
	}
	return failed
}

// menu 打印菜单
func (c *Calculator) menu() {
	fmt.Fprintf(c.out, "\n%s\n请选择一个选项:\n", types.MenuTitle)
	for _, op := range types.OpTypes() {
		fmt.Fprintf(c.out, "  %d. %s\n", op, op.Title())
	}
}

// prompt 打印提示并读取一行，输入结束返回 false
func (c *Calculator) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	c.line++
	return strings.TrimSpace(c.in.Text()), true
}

// readOperands 读取运算所需的操作数
func (c *Calculator) readOperands(op types.OpType) (operands []maths.Complex, exponent float64, ok bool, err error) {
	names := []string{"复数 (Z): "}
	if op.Binary() {
		names = []string{"第一个复数 (Z1): ", "第二个复数 (Z2): "}
	}
	for _, name := range names {
		text, ok := c.prompt(name)
		if !ok {
			return nil, 0, false, nil
		}
		z, err := load.Value{Value: text, Line: c.line}.Complex()
		if err != nil {
			return nil, 0, true, err
		}
		operands = append(operands, z)
	}
	switch op {
	case types.OpPow:
		text, ok := c.prompt("指数 n: ")
		if !ok {
			return nil, 0, false, nil
		}
		exponent, err = load.Value{Value: text, Line: c.line}.Float()
	case types.OpRoot:
		text, ok := c.prompt("次数 n: ")
		if !ok {
			return nil, 0, false, nil
		}
		var n int
		n, err = load.Value{Value: text, Line: c.line}.Int()
		exponent = float64(n)
	}
	return operands, exponent, true, err
}

// execute 计算、输出并记录结果
func (c *Calculator) execute(op types.OpType, operands []maths.Complex, exponent float64) bool {
	results, err := Calculate(op, operands, exponent)
	if err != nil {
		fmt.Fprintf(c.out, "错误: %v\n", err)
		return false
	}
	if len(results) == 1 {
		fmt.Fprintf(c.out, "\n结果 (代数形式):   %s\n", results[0].Binomial())
		fmt.Fprintf(c.out, "结果 (极坐标形式): %s\n", results[0].PolarString())
	} else {
		for k, z := range results {
			fmt.Fprintf(c.out, "\n根 k=%d (代数形式):   %s\n", k, z.Binomial())
			fmt.Fprintf(c.out, "根 k=%d (极坐标形式): %s\n", k, z.PolarString())
		}
	}
	entry := types.NewEntry(op, operands, exponent, results)
	if c.Record != nil {
		c.Record.Add(entry)
	}
	if c.History != nil {
		if _, err := c.History.Save(entry); err != nil {
			c.logger().Error("保存历史记录失败", "op", op, "error", err)
		}
	}
	return true
}

func (c *Calculator) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
