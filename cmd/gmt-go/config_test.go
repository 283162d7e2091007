package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.toml")
	err := os.WriteFile(good, []byte("library = \"/opt/gmt/lib/libgmt\"\nsession_name = \"batch\"\nlog_level = \"debug\"\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}
	got, err := loadConfig(good)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := fileConfig{Library: "/opt/gmt/lib/libgmt", SessionName: "batch", LogLevel: "debug"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	bad := filepath.Join(dir, "bad.toml")
	err = os.WriteFile(bad, []byte("libary = \"typo\"\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(bad); err == nil {
		t.Error("expected error for unknown key")
	}

	if got, err := loadConfig(""); err != nil || got != (fileConfig{}) {
		t.Errorf("loadConfig(\"\") = %+v, %v", got, err)
	}
}

func TestOverride(t *testing.T) {
	v := "default"
	override(&v, "file", "")
	if v != "file" {
		t.Errorf("got %q, want file", v)
	}
	override(&v, "file", "flag")
	if v != "flag" {
		t.Errorf("got %q, want flag", v)
	}
}
