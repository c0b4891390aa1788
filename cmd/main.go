package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"complexcalc"
	"complexcalc/load"
	"complexcalc/plane"
	"complexcalc/store"
	"complexcalc/types"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	dbPath := flag.String("db", types.DefaultHistoryPath, "历史记录数据库路径，为空时不保存")
	plotPath := flag.String("plot", "", "退出时保存平面图，格式由扩展名决定，例如 "+types.DefaultPlotPath)
	htmlPath := flag.String("html", "", "退出时保存网页，例如 "+types.DefaultHTMLPath)
	serveAddr := flag.String("serve", "", "网页服务地址，例如 "+types.DefaultHTTPAddr)
	script := flag.String("script", "", "执行计算脚本后退出")
	history := flag.Int("history", 0, "显示最近 n 条历史记录后退出")
	flag.Parse()

	// ── 历史记录 ──────────────────────────────────────────────────────
	var db *store.DB
	if *dbPath != "" {
		var err error
		if db, err = openHistory(*dbPath); err != nil {
			slog.Error("failed to open database", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("database opened", "path", *dbPath, "session", db.Session())
	}
	if *history > 0 {
		if db == nil {
			slog.Error("history requires -db")
			os.Exit(1)
		}
		entries, err := db.List(*history)
		if err != nil {
			slog.Error("failed to list history", "error", err)
			db.Close()
			os.Exit(1)
		}
		for _, e := range entries {
			fmt.Printf("%4d  %s  %s\n", e.ID, e.Created.Format("2006-01-02 15:04:05"), e)
		}
		return
	}

	calc := complexcalc.NewCalculator(os.Stdin, os.Stdout)
	if db != nil {
		calc.History = db
	}

	// ── 网页服务 ──────────────────────────────────────────────────────
	if *serveAddr != "" {
		charts := plane.NewCharts(calc.Record)
		mux := http.NewServeMux()
		mux.HandleFunc("/", charts.Handler)
		mux.HandleFunc("/record.json", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := calc.Record.Render(w); err != nil {
				calc.Record.Error(err)
			}
		})
		go func() {
			slog.Info("serving complex plane", "addr", *serveAddr)
			if err := http.ListenAndServe(*serveAddr, mux); err != nil {
				slog.Error("http server stopped", "error", err)
			}
		}()
	}

	// ── 计算 ──────────────────────────────────────────────────────────
	if *script != "" {
		cmds, err := load.LoadFile(*script)
		if err != nil {
			slog.Error("failed to load script", "path", *script, "error", err)
			if db != nil {
				db.Close()
			}
			os.Exit(1)
		}
		if failed := calc.RunCommands(cmds); failed > 0 {
			slog.Warn("script finished with errors", "failed", failed, "total", len(cmds))
		}
	} else if err := calc.Run(); err != nil {
		slog.Error("input error", "error", err)
	}

	// ── 输出 ──────────────────────────────────────────────────────────
	if *plotPath != "" {
		if err := plane.SavePlot(*plotPath, calc.Record.Entries()); err != nil {
			slog.Error("failed to save plot", "path", *plotPath, "error", err)
		} else {
			slog.Info("plot saved", "path", *plotPath)
		}
	}
	if *htmlPath != "" {
		if err := writeHTML(*htmlPath, plane.NewCharts(calc.Record)); err != nil {
			slog.Error("failed to save page", "path", *htmlPath, "error", err)
		} else {
			slog.Info("page saved", "path", *htmlPath)
		}
	}
}

// openHistory 创建数据库目录并打开历史记录
func openHistory(path string) (*store.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	return store.Open(path)
}

// writeHTML 保存网页
func writeHTML(path string, charts *plane.Charts) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return charts.Render(file)
}
