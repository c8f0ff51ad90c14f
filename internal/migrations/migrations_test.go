package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestRead(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/000002_b.sql": {Data: []byte("ALTER TABLE a ADD COLUMN b TEXT;\n")},
		"sql/000001_a.sql": {Data: []byte("CREATE TABLE a (id INTEGER);\n\nCREATE INDEX a_id ON a (id);\n")},
		"sql/README.md":    {Data: []byte("not a migration")},
	}

	got, err := Read(fsys, "sql")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := []Migration{
		{Name: "000001_a.sql", Statements: []string{"CREATE TABLE a (id INTEGER)", "CREATE INDEX a_id ON a (id)"}},
		{Name: "000002_b.sql", Statements: []string{"ALTER TABLE a ADD COLUMN b TEXT"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedSettingsMigration(t *testing.T) {
	t.Parallel()

	got, err := Read(migrationsFS, migrationsDir)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) == 0 || got[0].Name != "000001_settings.sql" {
		t.Fatalf("first migration = %+v, want 000001_settings.sql", got)
	}
}
