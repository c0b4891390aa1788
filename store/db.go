// Package store 提供基于 SQLite 的计算历史存储。
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"complexcalc/types"
)

// DB 计算历史数据库
type DB struct {
	conn    *sqlx.DB
	session string // 本次运行的会话标识
}

// row 数据库中的一行
type row struct {
	ID       int64   `db:"id"`
	Session  string  `db:"session"`
	Op       int     `db:"op"`
	Operands string  `db:"operands_json"`
	Exponent float64 `db:"exponent"`
	Results  string  `db:"results_json"`
	Created  int64   `db:"created"`
}

// Open 打开或创建数据库
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db := &DB{conn: conn, session: uuid.NewString()}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close 关闭数据库
func (db *DB) Close() error {
	return db.conn.Close()
}

// Session 当前会话标识
func (db *DB) Session() string { return db.session }

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session TEXT NOT NULL,
		op INTEGER NOT NULL,
		operands_json TEXT NOT NULL,
		exponent REAL NOT NULL,
		results_json TEXT NOT NULL,
		created INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_session ON history(session);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Save 保存一条计算记录，返回记录编号
func (db *DB) Save(e types.Entry) (int64, error) {
	operands, err := json.Marshal(e.Operands)
	if err != nil {
		return 0, err
	}
	results, err := json.Marshal(e.Results)
	if err != nil {
		return 0, err
	}
	created := e.Created
	if created.IsZero() {
		created = time.Now()
	}
	res, err := db.conn.NamedExec(`INSERT INTO history (session, op, operands_json, exponent, results_json, created)
		VALUES (:session, :op, :operands_json, :exponent, :results_json, :created)`, row{
		Session:  db.session,
		Op:       int(e.Op),
		Operands: string(operands),
		Exponent: e.Exponent,
		Results:  string(results),
		Created:  created.UnixNano(),
	})
	if err != nil {
		return 0, fmt.Errorf("save history: %w", err)
	}
	return res.LastInsertId()
}

// List 按时间倒序返回最近的 limit 条记录，limit <= 0 返回全部
func (db *DB) List(limit int) ([]types.Entry, error) {
	query := "SELECT * FROM history ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	var rows []row
	if err := db.conn.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	entries := make([]types.Entry, 0, len(rows))
	for _, r := range rows {
		e := types.Entry{
			ID:       r.ID,
			Session:  r.Session,
			Op:       types.OpType(r.Op),
			Exponent: r.Exponent,
			Created:  time.Unix(0, r.Created),
		}
		if err := json.Unmarshal([]byte(r.Operands), &e.Operands); err != nil {
			return nil, fmt.Errorf("history %d operands: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(r.Results), &e.Results); err != nil {
			return nil, fmt.Errorf("history %d results: %w", r.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Clear 删除全部记录
func (db *DB) Clear() error {
	_, err := db.conn.Exec("DELETE FROM history")
	return err
}
