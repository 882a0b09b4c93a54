package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the CLI with a config file that points nowhere special and
// returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("calendar:\n  default_layout: YYYY-MM-DD\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	cmd := New()
	cmd.Writer = &buf
	err := cmd.Run(context.Background(), append([]string{"miti", "--config", path}, args...))
	return buf.String(), err
}

func TestToAD(t *testing.T) {
	got, err := run(t, "to-ad", "2053-10-19")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "AD 1997-02-01") || !strings.Contains(got, "Saturday, Magh 19") {
		t.Errorf("output = %q", got)
	}
}

func TestToBSNepali(t *testing.T) {
	got, err := run(t, "--lang", "np", "to-bs", "2024-04-13")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "BS २०८१-०१-०१") {
		t.Errorf("output = %q", got)
	}
}

func TestFormat(t *testing.T) {
	got, err := run(t, "format", "2080-01-15", "dddd, MMMM D YYYY")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(got) != "Friday, Baisakh 15 2080" {
		t.Errorf("output = %q", got)
	}
}

func TestAddNegative(t *testing.T) {
	got, err := run(t, "add", "2081-01-01", "-1", "day")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "BS 2080-12-30") {
		t.Errorf("output = %q", got)
	}
	if _, err := run(t, "add", "2081-01-01", "one", "day"); err == nil {
		t.Error("non-numeric value should fail")
	}
	if _, err := run(t, "add", "2081-01-01", "1", "fortnight"); err == nil {
		t.Error("bad unit should fail")
	}
}

func TestCal(t *testing.T) {
	got, err := run(t, "cal", "2081", "1")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("cal printed %d lines:\n%s", len(lines), got)
	}
	if strings.TrimSpace(lines[0]) != "Baisakh 2081" {
		t.Errorf("title = %q", lines[0])
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[1]), "Sun") {
		t.Errorf("header = %q", lines[1])
	}
	// Baisakh 2081 starts on a Saturday, the last column.
	if strings.TrimSpace(lines[2]) != "1" {
		t.Errorf("first week = %q", lines[2])
	}

	if _, err := run(t, "cal", "2081"); err == nil {
		t.Error("a lone year should fail")
	}
	if _, err := run(t, "--lang", "np", "cal", "--kind", "AD", "2024", "2"); err != nil {
		t.Errorf("AD cal: %v", err)
	}
}

func TestArgumentErrors(t *testing.T) {
	for _, args := range [][]string{
		{"to-ad"},
		{"to-bs", "2024-01-01", "extra"},
		{"format", "2080-01-15"},
		{"to-ad", "2080-13-01"},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestMissingExplicitConfig(t *testing.T) {
	cmd := New()
	cmd.Writer = &bytes.Buffer{}
	err := cmd.Run(context.Background(), []string{"miti", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "to-ad", "2080-01-01"})
	if err == nil {
		t.Error("an explicitly named missing config should fail")
	}
}
