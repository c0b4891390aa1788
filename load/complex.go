package load

import (
	"fmt"
	"math"
	"strings"

	"complexcalc/maths"
)

// polarSeparators 极坐标形式的模与辐角分隔符
var polarSeparators = []string{"∠", "<", "@"}

// ParseComplex 解析复数文本
// 代数形式: "3", "-2.5", "4i", "-i", "3+4i", "3 - 4i"
// 极坐标形式: "2∠90", "2<90°", "2@1.5708rad"，辐角默认单位为度
func ParseComplex(s string) (maths.Complex, error) {
	text := strings.Join(strings.Fields(s), "")
	if text == "" {
		return maths.Complex{}, fmt.Errorf("%w: 空输入", ErrSyntax)
	}
	for _, sep := range polarSeparators {
		if r, arg, ok := strings.Cut(text, sep); ok {
			return parsePolar(s, r, arg)
		}
	}
	return parseRect(s, text)
}

// parsePolar 解析 r∠θ
func parsePolar(src, rStr, argStr string) (maths.Complex, error) {
	r, err := parseFinite(rStr)
	if err != nil {
		return maths.Complex{}, fmt.Errorf("%w: 模 %q", ErrSyntax, src)
	}
	radians := false
	switch {
	case strings.HasSuffix(argStr, "rad"):
		argStr, radians = strings.TrimSuffix(argStr, "rad"), true
	case strings.HasSuffix(argStr, "°"):
		argStr = strings.TrimSuffix(argStr, "°")
	case strings.HasSuffix(argStr, "deg"):
		argStr = strings.TrimSuffix(argStr, "deg")
	}
	theta, err := parseFinite(argStr)
	if err != nil {
		return maths.Complex{}, fmt.Errorf("%w: 辐角 %q", ErrSyntax, src)
	}
	if !radians {
		theta = theta * math.Pi / 180
	}
	return maths.NewPolar(r, theta), nil
}

// parseRect 解析 a+bi
func parseRect(src, text string) (maths.Complex, error) {
	last := text[len(text)-1]
	if last != 'i' && last != 'j' {
		a, err := parseFinite(text)
		if err != nil {
			return maths.Complex{}, fmt.Errorf("%w: %q", ErrSyntax, src)
		}
		return maths.NewRect(a, 0), nil
	}
	body := text[:len(text)-1]
	// 找到实部与虚部之间的符号，跳过指数中的符号
	split := -1
	for i := len(body) - 1; i > 0; i-- {
		if (body[i] == '+' || body[i] == '-') && body[i-1] != 'e' && body[i-1] != 'E' {
			split = i
			break
		}
	}
	var a float64
	imagStr := body
	if split > 0 {
		var err error
		if a, err = parseFinite(body[:split]); err != nil {
			return maths.Complex{}, fmt.Errorf("%w: 实部 %q", ErrSyntax, src)
		}
		imagStr = body[split:]
	}
	var b float64
	switch imagStr {
	case "", "+":
		b = 1
	case "-":
		b = -1
	default:
		var err error
		if b, err = parseFinite(imagStr); err != nil {
			return maths.Complex{}, fmt.Errorf("%w: 虚部 %q", ErrSyntax, src)
		}
	}
	return maths.NewRect(a, b), nil
}
