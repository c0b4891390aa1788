package plane

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"complexcalc/maths"
	"complexcalc/types"
)

// testRecord 构造测试记录: 3+4i 加 1-2i, 以及 1 的 4 次方根
func testRecord(t *testing.T) *Record {
	t.Helper()
	rec := NewRecord()
	z1, z2 := maths.NewRect(3, 4), maths.NewRect(1, -2)
	rec.Add(types.NewEntry(types.OpAdd, []maths.Complex{z1, z2}, 0, []maths.Complex{maths.Add(z1, z2)}))
	roots, err := maths.Root(maths.NewRect(1, 0), 4)
	if err != nil {
		t.Fatalf("Root failed: %v", err)
	}
	rec.Add(types.NewEntry(types.OpRoot, []maths.Complex{maths.NewRect(1, 0)}, 4, roots))
	return rec
}

// TestRecord 记录与展开
func TestRecord(t *testing.T) {
	rec := testRecord(t)
	if rec.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", rec.Len())
	}
	points := rec.Points()
	// 2 操作数 + 1 结果 + 1 操作数 + 4 结果
	if len(points) != 8 {
		t.Fatalf("Expected 8 points, got %d", len(points))
	}
	if points[2].A != 4 || points[2].B != 2 || points[2].Label != "4.0000 + 2.0000i" {
		t.Errorf("sum point = %+v", points[2])
	}
	var buf bytes.Buffer
	if err := rec.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	var decoded []types.Entry
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Render output is not JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Op != types.OpRoot || len(decoded[1].Results) != 4 {
		t.Errorf("decoded = %+v", decoded)
	}
	// 副本不影响记录
	entries := rec.Entries()
	entries[0].Op = types.OpDiv
	if rec.Entries()[0].Op != types.OpAdd {
		t.Errorf("Entries() returned shared slice")
	}
	rec.Reset()
	if rec.Len() != 0 || len(rec.Points()) != 0 {
		t.Errorf("Reset did not clear record")
	}
}

// TestWritePlot 输出 SVG 平面图
func TestWritePlot(t *testing.T) {
	rec := testRecord(t)
	var buf bytes.Buffer
	if err := WritePlot(&buf, rec.Entries(), "svg"); err != nil {
		t.Fatalf("WritePlot failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("Expected SVG output")
	}
	buf.Reset()
	if err := WritePlot(&buf, nil, "png"); err != nil {
		t.Fatalf("WritePlot empty failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("Expected PNG output")
	}
	if err := WritePlot(&buf, nil, "bmp-unknown"); err == nil {
		t.Errorf("Expected error for unknown format")
	}
}

// TestPlotRange 坐标轴关于原点对称并包含所有点
func TestPlotRange(t *testing.T) {
	p, err := Plot(testRecord(t).Entries())
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	if p.X.Min != -p.X.Max || p.Y.Min != -p.Y.Max {
		t.Errorf("axes not symmetric: x[%g, %g] y[%g, %g]", p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
	}
	if p.X.Max < 4 || p.Y.Max < 4 {
		t.Errorf("axes do not cover points: %g, %g", p.X.Max, p.Y.Max)
	}
}

// TestCharts 网页输出与 HTTP 处理
func TestCharts(t *testing.T) {
	c := NewCharts(testRecord(t))
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"echarts", "4.0000 + 2.0000i", "#2 root"} {
		if !strings.Contains(html, want) {
			t.Errorf("page does not contain %q", want)
		}
	}
	rr := httptest.NewRecorder()
	c.Handler(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != 200 || !strings.Contains(rr.Body.String(), "echarts") {
		t.Errorf("Handler = %d", rr.Code)
	}
}
