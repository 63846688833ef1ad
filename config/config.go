package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the operational settings for a rental ledger
// deployment.
type Config struct {
	// DataDir is the directory holding the bolt database.
	DataDir string

	// Network selects the settlement network: mainnet, testnet or
	// regtest.
	Network string

	// LogLevel is the verbosity consumers should log at: debug, info,
	// warn or error.
	LogLevel string

	// OwnerAddr and ManagerAddr are the 20-byte authorization
	// addresses, hex encoded. Both must be set before the ledger can
	// be constructed.
	OwnerAddr   string
	ManagerAddr string

	// FeeRate is the settlement fee rate in satoshis per kilobyte.
	FeeRate uint64
}

// DefaultConfig returns the baseline configuration: mainnet, info
// logging, data under ~/.rentroll, and a 1 sat/kB fee rate. The
// authorization addresses have no defaults.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:  filepath.Join(home, ".rentroll"),
		Network:  "mainnet",
		LogLevel: "info",
		FeeRate:  1,
	}
}

// SaveConfig writes cfg to path as key=value lines, creating parent
// directories as needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("datadir=" + cfg.DataDir + "\n")
	b.WriteString("network=" + cfg.Network + "\n")
	b.WriteString("loglevel=" + cfg.LogLevel + "\n")
	b.WriteString("owner=" + cfg.OwnerAddr + "\n")
	b.WriteString("manager=" + cfg.ManagerAddr + "\n")
	b.WriteString("feerate=" + strconv.FormatUint(cfg.FeeRate, 10) + "\n")

	return os.WriteFile(path, []byte(b.String()), 0o600)
}

// LoadConfig reads a key=value config file saved by SaveConfig.
// Blank lines, lines starting with '#', and unknown keys are ignored.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, err
	}

	cfg := DefaultConfig()
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Config{}, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, i+1, line)
		}
		if err := cfg.set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return Config{}, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return cfg, nil
}

// ApplyEnv overlays RENTROLL_* environment variables onto cfg. Only
// set, non-empty variables override; file and default values survive
// otherwise.
func ApplyEnv(cfg Config, env map[string]string) (Config, error) {
	overlays := map[string]string{
		"RENTROLL_DATADIR":  "datadir",
		"RENTROLL_NETWORK":  "network",
		"RENTROLL_LOGLEVEL": "loglevel",
		"RENTROLL_OWNER":    "owner",
		"RENTROLL_MANAGER":  "manager",
		"RENTROLL_FEERATE":  "feerate",
	}
	for envKey, key := range overlays {
		if v, ok := env[envKey]; ok && v != "" {
			if err := cfg.set(key, v); err != nil {
				return Config{}, fmt.Errorf("%s: %w", envKey, err)
			}
		}
	}
	return cfg, nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "datadir":
		c.DataDir = value
	case "network":
		c.Network = value
	case "loglevel":
		c.LogLevel = value
	case "owner":
		c.OwnerAddr = value
	case "manager":
		c.ManagerAddr = value
	case "feerate":
		rate, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: feerate %q", ErrInvalidConfigLine, value)
		}
		c.FeeRate = rate
	default:
		// Unknown keys are skipped so older binaries can read newer
		// config files.
	}
	return nil
}
