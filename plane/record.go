package plane

import (
	"encoding/json"
	"io"
	"log"
	"sync"

	"complexcalc/types"
)

// Record 记录计算历史
type Record struct {
	mu      sync.RWMutex
	entries []types.Entry // 历史列表
}

// NewRecord 创建记录
func NewRecord() *Record { return &Record{} }

// Add 追加一条记录
func (list *Record) Add(e types.Entry) {
	list.mu.Lock()
	defer list.mu.Unlock()
	list.entries = append(list.entries, e)
}

// Len 记录数量
func (list *Record) Len() int {
	list.mu.RLock()
	defer list.mu.RUnlock()
	return len(list.entries)
}

// Entries 返回记录副本
func (list *Record) Entries() []types.Entry {
	list.mu.RLock()
	defer list.mu.RUnlock()
	return append([]types.Entry(nil), list.entries...)
}

// Reset 清空记录
func (list *Record) Reset() {
	list.mu.Lock()
	defer list.mu.Unlock()
	list.entries = nil
}

// Points 展开所有操作数与结果
func (list *Record) Points() []types.Point {
	list.mu.RLock()
	defer list.mu.RUnlock()
	var points []types.Point
	for _, e := range list.entries {
		points = append(points, e.Operands...)
		points = append(points, e.Results...)
	}
	return points
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error {
	return json.NewEncoder(w).Encode(list.Entries())
}

func (list *Record) Error(err error) { log.Println(err) }
