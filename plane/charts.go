package plane

import (
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 复平面网页绘制
type Charts struct {
	*Record
}

// NewCharts 创建网页绘制
func NewCharts(record *Record) *Charts { return &Charts{Record: record} }

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	entries := c.Entries()
	limit := 1.0
	for _, e := range entries {
		for _, p := range e.Operands {
			limit = math.Max(limit, math.Max(math.Abs(p.A), math.Abs(p.B)))
		}
		for _, p := range e.Results {
			limit = math.Max(limit, math.Max(math.Abs(p.A), math.Abs(p.B)))
		}
	}
	limit = math.Ceil(limit * 1.2)
	// 初始化界面
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "复平面",
			Subtitle: "操作数与计算结果的代数形式坐标",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Re",
			Type: "value",
			Min:  -limit,
			Max:  limit,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Im",
			Type: "value",
			Min:  -limit,
			Max:  limit,
		}),
	)
	// 处理数据
	for i, e := range entries {
		data := make([]opts.ScatterData, 0, len(e.Operands)+len(e.Results))
		for _, p := range e.Operands {
			data = append(data, opts.ScatterData{Name: p.Label, Value: []float64{p.A, p.B}, Symbol: "emptyCircle", SymbolSize: 8})
		}
		for _, p := range e.Results {
			data = append(data, opts.ScatterData{Name: p.Label, Value: []float64{p.A, p.B}, Symbol: "circle", SymbolSize: 10})
		}
		scatter.AddSeries(fmt.Sprintf("#%d %s", i+1, e.Op), data,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Position:  "right",
				Formatter: "{b}",
			}),
		)
	}
	// 构建界面
	page := components.NewPage()
	page.AddCharts(scatter)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}
