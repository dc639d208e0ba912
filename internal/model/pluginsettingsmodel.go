package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ PluginSettingsModel = (*customPluginSettingsModel)(nil)

type (
	// PluginSettingsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customPluginSettingsModel.
	PluginSettingsModel interface {
		pluginSettingsModel
		withSession(session sqlx.Session) PluginSettingsModel
		Upsert(ctx context.Context, data *PluginSettings) error
		FindByContext(ctx context.Context, contextId int64) ([]*PluginSettings, error)
	}

	customPluginSettingsModel struct {
		*defaultPluginSettingsModel
	}
)

// NewPluginSettingsModel returns a model for the database table.
func NewPluginSettingsModel(conn sqlx.SqlConn) PluginSettingsModel {
	return &customPluginSettingsModel{
		defaultPluginSettingsModel: newPluginSettingsModel(conn),
	}
}

func (m *customPluginSettingsModel) withSession(session sqlx.Session) PluginSettingsModel {
	return NewPluginSettingsModel(sqlx.NewSqlConnFromSession(session))
}

// Upsert inserts a setting or replaces the value of an existing one.
func (m *customPluginSettingsModel) Upsert(ctx context.Context, data *PluginSettings) error {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?) "+
		"on conflict(`context_id`, `setting_name`) do update set "+
		"`setting_value` = excluded.`setting_value`, `setting_type` = excluded.`setting_type`, `updated_at` = CURRENT_TIMESTAMP",
		m.table, pluginSettingsRowsExpectAutoSet)
	_, err := m.conn.ExecCtx(ctx, query, data.ContextId, data.SettingName, data.SettingValue, data.SettingType)
	return err
}

// FindByContext returns every setting of a context ordered by name.
func (m *customPluginSettingsModel) FindByContext(ctx context.Context, contextId int64) ([]*PluginSettings, error) {
	var resp []*PluginSettings
	query := fmt.Sprintf("select %s from %s where `context_id` = ? order by `setting_name`", pluginSettingsRows, m.table)
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, contextId); err != nil {
		return nil, err
	}
	return resp, nil
}
