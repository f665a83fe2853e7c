package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSchemaCreatesTables(t *testing.T) {
	gormDB, err := NewGormDB(":memory:")
	require.NoError(t, err)
	defer gormDB.Close()

	require.NoError(t, gormDB.InitSchema())

	for _, table := range []string{"Kosan", "Kamar", "Penghuni", "Penghuni_Kamar"} {
		assert.True(t, gormDB.DB().Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestDropSchema(t *testing.T) {
	gormDB, err := NewGormDB(":memory:")
	require.NoError(t, err)
	defer gormDB.Close()

	require.NoError(t, gormDB.InitSchema())
	require.NoError(t, gormDB.DropSchema())

	assert.False(t, gormDB.DB().Migrator().HasTable("Kosan"))
}
