package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

func (s *sample) Validate() error {
	if s.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "miti")
	var s sample
	if err := Load(write(t, "name: ${SAMPLE_NAME}\nport: 80\n"), &s); err != nil {
		t.Fatal(err)
	}
	if s.Name != "miti" || s.Port != 80 {
		t.Errorf("loaded %+v", s)
	}
}

func TestLoadValidates(t *testing.T) {
	var s sample
	err := Load(write(t, "name: x\n"), &s)
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadIfExists(t *testing.T) {
	s := sample{Port: 1}
	found, err := LoadIfExists(filepath.Join(t.TempDir(), "missing.yaml"), &s)
	if found || err != nil || s.Port != 1 {
		t.Errorf("missing file: found=%v err=%v s=%+v", found, err, s)
	}
	found, err = LoadIfExists(write(t, "port: 2\n"), &s)
	if !found || err != nil || s.Port != 2 {
		t.Errorf("existing file: found=%v err=%v s=%+v", found, err, s)
	}
}
