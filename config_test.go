package slip

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Config_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Prompt != "user> " {
		t.Fatalf("want default prompt %q, got %q", "user> ", cfg.Prompt)
	}
	if cfg.HistoryPath == "" {
		t.Fatal("default history path must be set")
	}
}

func Test_Config_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing rc file must not error: %v", err)
	}
	if cfg.Prompt != "user> " {
		t.Fatalf("got prompt %q", cfg.Prompt)
	}
}

func Test_Config_LoadsYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc.yaml")
	data := "prompt: \"slip> \"\nhistory_path: /tmp/h.db\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "slip> " {
		t.Fatalf("got prompt %q", cfg.Prompt)
	}
	if cfg.HistoryPath != "/tmp/h.db" {
		t.Fatalf("got history path %q", cfg.HistoryPath)
	}
	if cfg.PreludePath != "" {
		t.Fatalf("unset key must stay empty, got %q", cfg.PreludePath)
	}
}

func Test_Config_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc.yaml")
	if err := os.WriteFile(path, []byte(":[not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed rc file must error")
	}
}
