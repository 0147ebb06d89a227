package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	kit "salesboard/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("SALESBOARD_").Prefix("API_")
	if got := api.Key("PORT"); got != "SALESBOARD_API_PORT" {
		t.Fatalf("Key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_NAME", "  salesboard ")
	if got := c.MustString("NAME"); got != "salesboard" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMayReaders(t *testing.T) {
	c := New().Prefix("CFGM_")
	t.Setenv("CFGM_INT", " 8 ")
	t.Setenv("CFGM_BADINT", "x")
	t.Setenv("CFGM_BOOL", "true")
	t.Setenv("CFGM_BADBOOL", "sometimes")
	t.Setenv("CFGM_DUR", "250ms")
	t.Setenv("CFGM_BADDUR", "soon")
	t.Setenv("CFGM_CSV", " a, ,b ,")
	t.Setenv("CFGM_EMPTYCSV", " , ")

	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("INT", 1); got != 8 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BADINT", 3); got != 3 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if !c.MayBool("BOOL", false) || c.MayBool("BADBOOL", false) {
		t.Fatalf("MayBool mismatch")
	}
	if got := c.MayDuration("DUR", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BADDUR", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
	if got := c.MayCSV("CSV", nil); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("MayCSV = %v", got)
	}
	if got := c.MayCSV("EMPTYCSV", []string{"*"}); !reflect.DeepEqual(got, []string{"*"}) {
		t.Fatalf("MayCSV empty = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("CFGE_")
	t.Setenv("CFGE_SOURCE", "PG")
	t.Setenv("CFGE_BAD", "mysql")

	if got := c.MayEnum("SOURCE", "csv", "csv", "pg", "ch"); got != "pg" {
		t.Fatalf("MayEnum canonical = %q", got)
	}
	if got := c.MayEnum("BAD", "csv", "csv", "pg", "ch"); got != "csv" {
		t.Fatalf("MayEnum invalid = %q", got)
	}
	if got := c.MayEnum("MISSING", "csv", "csv"); got != "csv" {
		t.Fatalf("MayEnum missing = %q", got)
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("CFGD_FROM_FILE=file\nCFGD_PRESET=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CFGD_PRESET", "env")
	t.Setenv("CFGD_FROM_FILE", "")
	_ = os.Unsetenv("CFGD_FROM_FILE")

	loaded, err := LoadDotenv(filepath.Join(dir, "missing.env"), path)
	if err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != path {
		t.Fatalf("loaded = %v", loaded)
	}
	c := New().Prefix("CFGD_")
	if got := c.MayString("FROM_FILE", ""); got != "file" {
		t.Fatalf("file value = %q", got)
	}
	if got := c.MayString("PRESET", ""); got != "env" {
		t.Fatalf("env must win, got %q", got)
	}
}
