package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Endpoint != "http://localhost:5000" {
		t.Errorf("Expected default endpoint, got %q", cfg.Endpoint)
	}
	if cfg.Target != "en" {
		t.Errorf("Expected default target en, got %q", cfg.Target)
	}
	if cfg.Speech.Synthesizer != "espeak" {
		t.Errorf("Expected default synthesizer espeak, got %q", cfg.Speech.Synthesizer)
	}
	if cfg.Speech.ESpeak == nil || cfg.Speech.ESpeak.Speed != 150 {
		t.Errorf("Expected default espeak config, got %+v", cfg.Speech.ESpeak)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	data := []byte("endpoint: http://translate.example.com\ntarget: fr\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Endpoint != "http://translate.example.com" {
		t.Errorf("Expected overridden endpoint, got %q", cfg.Endpoint)
	}
	if cfg.Target != "fr" {
		t.Errorf("Expected target fr, got %q", cfg.Target)
	}
	if cfg.Server.Listen != ":5000" {
		t.Errorf("Expected default listen, got %q", cfg.Server.Listen)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Target = "ja"
	cfg.Speech.Synthesizer = "openai"

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Target != "ja" || loaded.Speech.Synthesizer != "openai" {
		t.Errorf("Round trip lost values: %+v", loaded)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("\t: ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Expected error for malformed yaml")
	}
}

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir returned error: %v", err)
	}
	want := filepath.Join(".config", "translingo")
	if !strings.HasSuffix(dir, want) {
		t.Errorf("Expected dir ending in %q, got %q", want, dir)
	}
}

func TestEnsureConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "translingo")

	got, err := EnsureConfigDir(dir)
	if err != nil {
		t.Fatalf("EnsureConfigDir returned error: %v", err)
	}
	if got != dir {
		t.Errorf("Expected %q back, got %q", dir, got)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("Expected directory created at %q", dir)
	}

	// Idempotent on an existing directory.
	if _, err := EnsureConfigDir(dir); err != nil {
		t.Errorf("Expected second call to succeed, got %v", err)
	}
}
