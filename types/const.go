package types

// 默认参数常量定义
var (
	DefaultHistoryPath = "data/history.db" // 默认历史记录数据库
	DefaultPlotPath    = "plane.png"       // 默认平面图输出
	DefaultHTMLPath    = "plane.html"      // 默认网页输出
	DefaultHTTPAddr    = ":8080"           // 默认网页服务地址
	PlotWidth          = 16.0              // 平面图宽度(厘米)
	PlotHeight         = 16.0              // 平面图高度(厘米)
	MaxRootDegree      = 1000              // 开方次数上限
	MenuTitle          = "--- 复数计算器 ---"   // 菜单标题
)
