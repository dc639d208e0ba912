package model

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Fetch job statuses.
const (
	JobStatusPending  = "pending"
	JobStatusRetrying = "retrying"
	JobStatusDone     = "done"
	JobStatusFailed   = "failed"
)

var _ FontFetchJobsModel = (*customFontFetchJobsModel)(nil)

type (
	// FontFetchJobsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customFontFetchJobsModel.
	FontFetchJobsModel interface {
		fontFetchJobsModel
		withSession(session sqlx.Session) FontFetchJobsModel
		ListByStatus(ctx context.Context, status string, limit int) ([]*FontFetchJobs, error)
		Stats(ctx context.Context) (map[string]int, error)
		MarkRetry(ctx context.Context, id string, errMsg string) error
		MarkDone(ctx context.Context, id string, rules int) error
		MarkFailed(ctx context.Context, id string, errMsg string) error
	}

	customFontFetchJobsModel struct {
		*defaultFontFetchJobsModel
	}
)

// NewFontFetchJobsModel returns a model for the database table.
func NewFontFetchJobsModel(conn sqlx.SqlConn) FontFetchJobsModel {
	return &customFontFetchJobsModel{
		defaultFontFetchJobsModel: newFontFetchJobsModel(conn),
	}
}

func (m *customFontFetchJobsModel) withSession(session sqlx.Session) FontFetchJobsModel {
	return NewFontFetchJobsModel(sqlx.NewSqlConnFromSession(session))
}

// ListByStatus returns jobs filtered by status with a limit, newest first.
func (m *customFontFetchJobsModel) ListByStatus(ctx context.Context, status string, limit int) ([]*FontFetchJobs, error) {
	var resp []*FontFetchJobs
	var query string
	var args []any

	if status != "" && status != "all" {
		query = fmt.Sprintf("select %s from %s where `status` = ? order by `created_at` desc, `id` limit ?", fontFetchJobsRows, m.table)
		args = []any{status, limit}
	} else {
		query = fmt.Sprintf("select %s from %s order by `created_at` desc, `id` limit ?", fontFetchJobsRows, m.table)
		args = []any{limit}
	}

	err := m.conn.QueryRowsCtx(ctx, &resp, query, args...)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Stats returns job counts grouped by status.
func (m *customFontFetchJobsModel) Stats(ctx context.Context) (map[string]int, error) {
	type statusCount struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}

	var rows []statusCount
	query := fmt.Sprintf("select `status`, count(*) as `count` from %s group by `status`", m.table)
	err := m.conn.QueryRowsCtx(ctx, &rows, query)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]int)
	for _, r := range rows {
		stats[r.Status] = r.Count
	}
	return stats, nil
}

// MarkRetry records a failed attempt that will be retried.
func (m *customFontFetchJobsModel) MarkRetry(ctx context.Context, id string, errMsg string) error {
	query := fmt.Sprintf("update %s set `status` = ?, `error` = ?, `attempts` = `attempts` + 1, `updated_at` = CURRENT_TIMESTAMP where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, JobStatusRetrying, errMsg, id)
	return err
}

// MarkDone marks a job as finished with the number of embed rules written.
func (m *customFontFetchJobsModel) MarkDone(ctx context.Context, id string, rules int) error {
	query := fmt.Sprintf("update %s set `status` = ?, `rules` = ?, `error` = NULL, `attempts` = `attempts` + 1, `finished_at` = CURRENT_TIMESTAMP, `updated_at` = CURRENT_TIMESTAMP where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, JobStatusDone, rules, id)
	return err
}

// MarkFailed marks a job as permanently failed.
func (m *customFontFetchJobsModel) MarkFailed(ctx context.Context, id string, errMsg string) error {
	query := fmt.Sprintf("update %s set `status` = ?, `error` = ?, `attempts` = `attempts` + 1, `finished_at` = CURRENT_TIMESTAMP, `updated_at` = CURRENT_TIMESTAMP where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, JobStatusFailed, sql.NullString{String: errMsg, Valid: errMsg != ""}, id)
	return err
}

// NullStringValue returns the string value or empty string.
func NullStringValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
