package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Server struct {
		HTTP struct {
			Addr string `koanf:"addr"`
		} `koanf:"http"`
	} `koanf:"server"`
	Livekit struct {
		URL    string `koanf:"url"`
		Key    string `koanf:"key"`
		Secret string `koanf:"secret"`
	} `koanf:"livekit"`
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  http:
    addr: "127.0.0.1:9090"
livekit:
  url: "wss://improv.example.com"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var cfg testConfig
	l := NewLoader(WithConfigFile(path))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTP.Addr != "127.0.0.1:9090" {
		t.Errorf("addr = %s, want 127.0.0.1:9090", cfg.Server.HTTP.Addr)
	}
	if cfg.Livekit.URL != "wss://improv.example.com" {
		t.Errorf("url = %s, want wss://improv.example.com", cfg.Livekit.URL)
	}
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
livekit:
  url: "wss://from-file.example.com"
  key: "file-key"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("STAGEPASS_LIVEKIT_URL", "wss://from-env.example.com")

	var cfg testConfig
	l := NewLoader(WithConfigFile(path))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Livekit.URL != "wss://from-env.example.com" {
		t.Errorf("url = %s, env should override file", cfg.Livekit.URL)
	}
	if cfg.Livekit.Key != "file-key" {
		t.Errorf("key = %s, file value should survive", cfg.Livekit.Key)
	}
}

func TestLoader_EnvPrefix(t *testing.T) {
	t.Setenv("CUSTOM_LIVEKIT_SECRET", "env-secret")
	t.Setenv("STAGEPASS_LIVEKIT_SECRET", "wrong-prefix")

	var cfg testConfig
	l := NewLoader(WithEnvPrefix("CUSTOM_"))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Livekit.Secret != "env-secret" {
		t.Errorf("secret = %s, want env-secret", cfg.Livekit.Secret)
	}
}

func TestLoader_LoadMap(t *testing.T) {
	var cfg testConfig
	l := NewLoader()
	if err := l.LoadMap(map[string]any{
		"server.http.addr": ":8080",
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}
	if err := l.k.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if cfg.Server.HTTP.Addr != ":8080" {
		t.Errorf("addr = %s, want :8080", cfg.Server.HTTP.Addr)
	}

	if l.GetString("server.http.addr") != ":8080" {
		t.Errorf("GetString() = %s, want :8080", l.GetString("server.http.addr"))
	}
}

func TestLoader_MissingFile(t *testing.T) {
	var cfg testConfig
	l := NewLoader(WithConfigFile("/nonexistent/config.yaml"))
	if err := l.Load(&cfg); err == nil {
		t.Error("Load() with missing file should fail")
	}
}
