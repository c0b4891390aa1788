package complexcalc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"complexcalc/load"
	"complexcalc/maths"
	"complexcalc/types"
)

// memHistory 内存历史存储
type memHistory struct {
	entries []types.Entry
	err     error
}

func (m *memHistory) Save(e types.Entry) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.entries = append(m.entries, e)
	return int64(len(m.entries)), nil
}

// TestCalculate 无输入输出的运算分发
func TestCalculate(t *testing.T) {
	z1, z2 := maths.NewRect(3, 4), maths.NewRect(1, -2)
	cases := []struct {
		op       types.OpType
		operands []maths.Complex
		exponent float64
		want     []string
	}{
		{types.OpAdd, []maths.Complex{z1, z2}, 0, []string{"4.0000 + 2.0000i"}},
		{types.OpSub, []maths.Complex{z1, z2}, 0, []string{"2.0000 + 6.0000i"}},
		{types.OpMul, []maths.Complex{z1, z2}, 0, []string{"11.0000 - 2.0000i"}},
		{types.OpDiv, []maths.Complex{z1, z2}, 0, []string{"-1.0000 + 2.0000i"}},
		{types.OpPow, []maths.Complex{z1}, 2, []string{"-7.0000 + 24.0000i"}},
		{types.OpRoot, []maths.Complex{maths.NewRect(-4, 0)}, 2, []string{"0.0000 + 2.0000i", "0.0000 - 2.0000i"}},
	}
	for _, c := range cases {
		results, err := Calculate(c.op, c.operands, c.exponent)
		if err != nil {
			t.Errorf("Calculate(%s) failed: %v", c.op, err)
			continue
		}
		if len(results) != len(c.want) {
			t.Errorf("Calculate(%s) returned %d results", c.op, len(results))
			continue
		}
		for i, z := range results {
			if z.Binomial() != c.want[i] {
				t.Errorf("Calculate(%s)[%d] = %q, expected %q", c.op, i, z.Binomial(), c.want[i])
			}
		}
	}
}

// TestCalculateError 运算错误类型
func TestCalculateError(t *testing.T) {
	one, zero := maths.NewRect(1, 0), maths.NewRect(0, 0)
	cases := []struct {
		op       types.OpType
		operands []maths.Complex
		exponent float64
		want     error
	}{
		{types.OpDiv, []maths.Complex{one, zero}, 0, maths.ErrDivisionByZero},
		{types.OpRoot, []maths.Complex{one}, 0, maths.ErrInvalidArgument},
		{types.OpRoot, []maths.Complex{one}, 2.5, maths.ErrInvalidArgument},
		{types.OpRoot, []maths.Complex{one}, 1e9, maths.ErrInvalidArgument},
		{types.OpRoot, []maths.Complex{one}, -1e20, maths.ErrInvalidArgument},
		{types.OpRoot, []maths.Complex{one}, float64(types.MaxRootDegree + 1), maths.ErrInvalidArgument},
		{types.OpPow, []maths.Complex{zero}, -2, maths.ErrInvalidOperand},
		{types.OpAdd, []maths.Complex{one}, 0, maths.ErrInvalidArgument},
		{types.OpExit, []maths.Complex{one}, 0, maths.ErrInvalidArgument},
	}
	for _, c := range cases {
		if _, err := Calculate(c.op, c.operands, c.exponent); !errors.Is(err, c.want) {
			t.Errorf("Calculate(%s) error = %v, expected %v", c.op, err, c.want)
		}
	}
}

// TestRun 菜单交互
func TestRun(t *testing.T) {
	// 加法, 除零, 无效选项, 单位根, 输入错误, 退出
	input := strings.Join([]string{
		"1", "3+4i", "1-2i",
		"4", "1", "0",
		"9",
		"6", "1", "4",
		"2", "abc",
		"0",
	}, "\n")
	var out bytes.Buffer
	hist := &memHistory{}
	calc := NewCalculator(strings.NewReader(input), &out)
	calc.History = hist
	if err := calc.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{
		"结果 (代数形式):   4.0000 + 2.0000i",
		"结果 (极坐标形式): 4.4721 * (cos(26.5651°) + i*sin(26.5651°))",
		"错误: 除数的模为零",
		"选项无效，请重试。",
		"根 k=3 (代数形式):   0.0000 - 1.0000i",
		"根 k=2 (极坐标形式): 1.0000 * (cos(180.0000°) + i*sin(180.0000°))",
		"输入错误: ",
		"再见!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output does not contain %q\n%s", want, text)
		}
	}
	if calc.Record.Len() != 2 || len(hist.entries) != 2 {
		t.Fatalf("Expected 2 recorded calculations, got %d / %d", calc.Record.Len(), len(hist.entries))
	}
	if hist.entries[1].Op != types.OpRoot || len(hist.entries[1].Results) != 4 {
		t.Errorf("root entry = %+v", hist.entries[1])
	}
}

// TestRunEOF 输入结束时正常退出
func TestRunEOF(t *testing.T) {
	var out bytes.Buffer
	calc := NewCalculator(strings.NewReader("3\n1+i\n"), &out)
	calc.History = &memHistory{err: errors.New("disk full")}
	if err := calc.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if calc.Record.Len() != 0 {
		t.Errorf("Expected no recorded calculation")
	}
}

// TestRunCommands 执行脚本
func TestRunCommands(t *testing.T) {
	cmds, err := load.LoadString("mul; 2∠30; 3∠60\ndiv; 1; 0\npow; 1+i; 2\n")
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	var out bytes.Buffer
	calc := NewCalculator(strings.NewReader(""), &out)
	// 保存失败只记录日志
	calc.History = &memHistory{err: errors.New("disk full")}
	if failed := calc.RunCommands(cmds); failed != 1 {
		t.Errorf("Expected 1 failed command, got %d", failed)
	}
	text := out.String()
	for _, want := range []string{
		"6.0000 * (cos(90.0000°) + i*sin(90.0000°))",
		"0.0000 + 2.0000i",
		"== 第 2 行: 两个复数相除 ==",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output does not contain %q\n%s", want, text)
		}
	}
	if calc.Record.Len() != 2 {
		t.Errorf("Expected 2 recorded calculations, got %d", calc.Record.Len())
	}
}
