package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_events (id TEXT PRIMARY KEY, kind TEXT, epoch TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_events")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "text", colMap["id"].Type)
	assert.Equal(t, "text", colMap["kind"].Type)

	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE test_events (id TEXT, kind TEXT)").Error)

	missing, err := MissingColumns(db, "test_events", []string{"id", "kind", "epoch"})
	require.NoError(t, err)
	assert.Equal(t, []string{"epoch"}, missing)
}
