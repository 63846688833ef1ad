package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rentrollorg/librentroll-go/shares"
)

const (
	testOwnerHex   = "0101010101010101010101010101010101010101"
	testManagerHex = "0202020202020202020202020202020202020202"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.OwnerAddr = testOwnerHex
	cfg.ManagerAddr = testManagerHex
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"Network", cfg.Network, "mainnet"},
		{"LogLevel", cfg.LogLevel, "info"},
		{"FeeRate", cfg.FeeRate, uint64(1)},
		{"OwnerAddr", cfg.OwnerAddr, ""},
		{"ManagerAddr", cfg.ManagerAddr, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}

	if cfg.DataDir == "" {
		t.Error("DataDir should not be empty")
	}
	if !strings.HasSuffix(cfg.DataDir, ".rentroll") {
		t.Errorf("DataDir = %q, want .rentroll suffix", cfg.DataDir)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")

	original := Config{
		DataDir:     "/tmp/test-rentroll",
		Network:     "testnet",
		LogLevel:    "debug",
		OwnerAddr:   testOwnerHex,
		ManagerAddr: testManagerHex,
		FeeRate:     50,
	}

	if err := SaveConfig(path, original); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if loaded != original {
		t.Errorf("round trip: got %+v, want %+v", loaded, original)
	}
}

func TestSaveConfigCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config")

	if err := SaveConfig(path, DefaultConfig()); err != nil {
		t.Fatalf("SaveConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Config file not created: %v", err)
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig nonexistent: got %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigInvalidLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")

	content := "this-is-not-key-value\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrInvalidConfigLine) {
		t.Errorf("LoadConfig bad line: got %v, want ErrInvalidConfigLine", err)
	}
}

func TestLoadConfigBadFeeRate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")

	content := "feerate = fast\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrInvalidConfigLine) {
		t.Errorf("LoadConfig bad feerate: got %v, want ErrInvalidConfigLine", err)
	}
}

func TestLoadConfigCommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")

	content := `# This is a comment
network = testnet

# Another comment
loglevel = debug
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Network != "testnet" {
		t.Errorf("Network = %q, want %q", cfg.Network, "testnet")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	// Unset fields should retain defaults.
	if cfg.FeeRate != 1 {
		t.Errorf("FeeRate = %d, want default 1", cfg.FeeRate)
	}
}

func TestLoadConfigUnknownKeysIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")

	content := "futurekey = futurevalue\nnetwork = testnet\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig with unknown key: %v", err)
	}
	if cfg.Network != "testnet" {
		t.Errorf("Network = %q, want %q", cfg.Network, "testnet")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := validConfig()

	env := map[string]string{
		"RENTROLL_NETWORK": "regtest",
		"RENTROLL_FEERATE": "250",
		"RENTROLL_MANAGER": "",
	}

	got, err := ApplyEnv(cfg, env)
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if got.Network != "regtest" {
		t.Errorf("Network = %q, want %q", got.Network, "regtest")
	}
	if got.FeeRate != 250 {
		t.Errorf("FeeRate = %d, want 250", got.FeeRate)
	}
	// Empty env values must not clear config values.
	if got.ManagerAddr != testManagerHex {
		t.Errorf("ManagerAddr = %q, want %q", got.ManagerAddr, testManagerHex)
	}
	// Untouched fields pass through.
	if got.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", got.LogLevel, "info")
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	_, err := ApplyEnv(validConfig(), map[string]string{"RENTROLL_FEERATE": "lots"})
	if !errors.Is(err, ErrInvalidConfigLine) {
		t.Errorf("ApplyEnv bad feerate: got %v, want ErrInvalidConfigLine", err)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(validConfig()); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"empty datadir", func(c *Config) { c.DataDir = "" }, ErrEmptyDataDir},
		{"bad network", func(c *Config) { c.Network = "simnet" }, ErrInvalidNetwork},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, ErrInvalidLogLevel},
		{"missing owner", func(c *Config) { c.OwnerAddr = "" }, ErrMissingAddress},
		{"missing manager", func(c *Config) { c.ManagerAddr = "" }, ErrMissingAddress},
		{"short owner", func(c *Config) { c.OwnerAddr = "abcd" }, ErrInvalidAddress},
		{"non-hex manager", func(c *Config) { c.ManagerAddr = strings.Repeat("zz", 20) }, ErrInvalidAddress},
		{"zero fee rate", func(c *Config) { c.FeeRate = 0 }, ErrZeroFeeRate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			if err := ValidateConfig(cfg); !errors.Is(err, tc.wantErr) {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestAddresses(t *testing.T) {
	cfg := validConfig()

	owner, manager, err := cfg.Addresses()
	if err != nil {
		t.Fatalf("Addresses: %v", err)
	}

	var wantOwner, wantManager shares.Address
	for i := range wantOwner {
		wantOwner[i] = 0x01
		wantManager[i] = 0x02
	}
	if owner != wantOwner {
		t.Errorf("owner = %x, want %x", owner, wantOwner)
	}
	if manager != wantManager {
		t.Errorf("manager = %x, want %x", manager, wantManager)
	}

	cfg.OwnerAddr = ""
	if _, _, err := cfg.Addresses(); !errors.Is(err, ErrMissingAddress) {
		t.Errorf("missing owner: got %v, want ErrMissingAddress", err)
	}
}
