package plane

import (
	"fmt"
	"io"
	"math"

	"complexcalc/types"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plot 将记录中的复数绘制为从原点出发的向量
// 每条记录一种颜色，操作数用虚线，结果用实线
func Plot(entries []types.Entry) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Complex plane"
	p.X.Label.Text = "Re"
	p.Y.Label.Text = "Im"
	p.Add(plotter.NewGrid())

	var (
		xys    plotter.XYs
		labels []string
		limit  = 1.0
	)
	for i, e := range entries {
		color := plotutil.Color(i)
		var thumb plot.Thumbnailer
		for _, group := range []struct {
			points []types.Point
			dashes []vg.Length
		}{
			{e.Operands, []vg.Length{vg.Points(4), vg.Points(2)}},
			{e.Results, nil},
		} {
			for _, pt := range group.points {
				line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: pt.A, Y: pt.B}})
				if err != nil {
					return nil, fmt.Errorf("绘制向量 %s: %w", pt.Label, err)
				}
				line.Color = color
				line.Dashes = group.dashes
				p.Add(line)
				if group.dashes == nil && thumb == nil {
					thumb = line
				}
				xys = append(xys, plotter.XY{X: pt.A, Y: pt.B})
				labels = append(labels, pt.Label)
				limit = math.Max(limit, math.Max(math.Abs(pt.A), math.Abs(pt.B)))
			}
		}
		if thumb != nil {
			p.Legend.Add(fmt.Sprintf("#%d %s", i+1, e.Op), thumb)
		}
	}
	if len(xys) > 0 {
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		scatter.Shape = draw.CircleGlyph{}
		scatter.Radius = vg.Points(2)
		p.Add(scatter)
		lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return nil, err
		}
		p.Add(lbl)
	}
	// 坐标轴关于原点对称
	limit *= 1.2
	p.X.Min, p.X.Max = -limit, limit
	p.Y.Min, p.Y.Max = -limit, limit
	return p, nil
}

// WritePlot 按格式 (png, svg, pdf ...) 输出平面图
func WritePlot(w io.Writer, entries []types.Entry, format string) error {
	p, err := Plot(entries)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(types.PlotWidth)*vg.Centimeter, vg.Length(types.PlotHeight)*vg.Centimeter, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SavePlot 保存平面图，格式由扩展名决定
func SavePlot(path string, entries []types.Entry) error {
	p, err := Plot(entries)
	if err != nil {
		return err
	}
	return p.Save(vg.Length(types.PlotWidth)*vg.Centimeter, vg.Length(types.PlotHeight)*vg.Centimeter, path)
}
