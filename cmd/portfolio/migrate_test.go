package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio/internal/config"
	"portfolio/internal/models"
	excelrepository "portfolio/internal/repository/excel"
)

func testApp(t *testing.T) *app {
	t.Helper()
	dir := t.TempDir()
	return &app{
		cfg: config.Config{
			App:   config.AppConfig{Currency: "INR"},
			Store: config.StoreConfig{Driver: config.StoreExcel, Path: filepath.Join(dir, "portfolio.xlsx"), Sheet: "Portfolio"},
			DB:    config.DBConfig{Driver: config.DriverSQLite, DSN: filepath.Join(dir, "portfolio.db"), MaxOpenConns: 1},
		},
		logger: zap.NewNop(),
	}
}

func seedWorkbook(t *testing.T, a *app) {
	t.Helper()
	set := models.RowSet{
		Columns: []string{"Symbol", "Value ₹", "Gain/Loss (₹)", "Investment ₹", "Sector"},
		Rows: []models.Row{
			{"Symbol": "AAA", "Value ₹": 100.0, "Gain/Loss (₹)": 10.0, "Investment ₹": 90.0, "Sector": "Tech"},
			{"Symbol": "BBB", "Value ₹": 200.0, "Gain/Loss (₹)": -20.0, "Investment ₹": 220.0, "Sector": "Energy"},
		},
	}
	store := excelrepository.New(a.cfg.Store.Path, a.cfg.Store.Sheet)
	require.NoError(t, store.SaveAll(context.Background(), set))
}

func TestMigrateExcelToSQL(t *testing.T) {
	a := testApp(t)
	seedWorkbook(t, a)

	cmd := newMigrateCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--from", "excel", "--to", "sql"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "migrated 2 rows")

	dst, err := openStore(a.cfg, config.StoreSQL, a.logger)
	require.NoError(t, err)
	defer dst.close()
	require.NotNil(t, dst.conn)
	got, err := dst.store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "AAA", got.Rows[0]["Symbol"])
	assert.Equal(t, 200.0, got.Rows[1]["Value ₹"])
	assert.Equal(t, []string{"Symbol", "Value ₹", "Gain/Loss (₹)", "Investment ₹", "Sector"}, got.Columns)
}

func TestMigrateRejectsSameBackend(t *testing.T) {
	a := testApp(t)
	cmd := newMigrateCmd(a)
	cmd.SetArgs([]string{"--from", "excel", "--to", "excel"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	assert.Error(t, cmd.Execute())
}

func TestSummaryCommand(t *testing.T) {
	a := testApp(t)
	seedWorkbook(t, a)

	cmd := newSummaryCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--currency", "USD"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "$300.00")
	assert.Contains(t, out.String(), "-3.23%")
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	a := testApp(t)
	_, err := openStore(a.cfg, "mongo", a.logger)
	require.Error(t, err)
}
