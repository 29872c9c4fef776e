package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveConfigPathAnchorsExplicitPath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	got, err := resolveConfigPath("preset.yaml", true)
	if err != nil {
		t.Fatalf("resolveConfigPath failed: %v", err)
	}
	want := filepath.Join(wd, "preset.yaml")
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestResolveConfigPathKeepsDefaultRelative(t *testing.T) {
	got, err := resolveConfigPath(defaultConfigPath, false)
	if err != nil {
		t.Fatalf("resolveConfigPath failed: %v", err)
	}
	if got != defaultConfigPath {
		t.Errorf("Expected %q, got %q", defaultConfigPath, got)
	}
}

func TestFlagSetOnlyReportsGivenFlags(t *testing.T) {
	if flagSet("config") {
		t.Error("config flag was not given to the test binary")
	}
}
