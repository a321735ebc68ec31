package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Vendor Documents")
	assert.NoError(t, err)
	assert.Len(t, mf.Version, 14)
	assert.Contains(t, filepath.Base(mf.UpPath), "add_vendor_documents.up.sql")
	assert.Contains(t, filepath.Base(mf.DownPath), "add_vendor_documents.down.sql")

	up, err := os.ReadFile(mf.UpPath)
	assert.NoError(t, err)
	assert.Contains(t, string(up), "Add Vendor Documents")

	down, err := os.ReadFile(mf.DownPath)
	assert.NoError(t, err)
	assert.Contains(t, string(down), "rollback")
}

func TestCreateMigrationMakesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	_, err := CreateMigration(dir, "init")
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"create vendors table", "create_vendors_table"},
		{"Add-Product_Index", "add_product_index"},
		{"weird!!chars??here", "weird_chars_here"},
		{"Trailing spaces  ", "trailing_spaces"},
		{"v2 schema", "v2_schema"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in), tt.in)
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{
		"20260101000000_init.up.sql",
		"20260101000000_init.down.sql",
		"20260115000000_marketing.up.sql",
		"20260115000000_marketing.down.sql",
		"notes.txt",
	} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- sql"), 0o644))
	}

	migrations, err := ListMigrations(dir)
	assert.NoError(t, err)
	assert.Len(t, migrations, 2)
	for _, m := range migrations {
		assert.False(t, strings.HasSuffix(m, ".sql"))
	}
}

func TestListMigrationsMissingDir(t *testing.T) {
	migrations, err := ListMigrations(filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, err)
	assert.Empty(t, migrations)
}
