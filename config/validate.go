package config

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rentrollorg/librentroll-go/shares"
)

// validLogLevels lists the accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.Network != "mainnet" && cfg.Network != "testnet" && cfg.Network != "regtest" {
		return ErrInvalidNetwork
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	if cfg.OwnerAddr == "" || cfg.ManagerAddr == "" {
		return ErrMissingAddress
	}
	if _, err := parseAddress(cfg.OwnerAddr); err != nil {
		return fmt.Errorf("owner: %w", err)
	}
	if _, err := parseAddress(cfg.ManagerAddr); err != nil {
		return fmt.Errorf("manager: %w", err)
	}

	if cfg.FeeRate == 0 {
		return ErrZeroFeeRate
	}

	return nil
}

// Addresses decodes the owner and manager authorization addresses.
func (c Config) Addresses() (owner, manager shares.Address, err error) {
	if c.OwnerAddr == "" || c.ManagerAddr == "" {
		return owner, manager, ErrMissingAddress
	}
	if owner, err = parseAddress(c.OwnerAddr); err != nil {
		return owner, manager, fmt.Errorf("owner: %w", err)
	}
	if manager, err = parseAddress(c.ManagerAddr); err != nil {
		return owner, manager, fmt.Errorf("manager: %w", err)
	}
	return owner, manager, nil
}

func parseAddress(s string) (shares.Address, error) {
	var addr shares.Address
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != shares.AddressLen {
		return addr, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	copy(addr[:], raw)
	return addr, nil
}
