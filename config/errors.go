package config

import "errors"

var (
	// ErrInvalidNetwork indicates the network name is not recognized.
	ErrInvalidNetwork = errors.New("config: invalid network (must be \"mainnet\", \"testnet\", or \"regtest\")")

	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrInvalidAddress indicates an authorization address is not 20
	// bytes of hex.
	ErrInvalidAddress = errors.New("config: invalid address (must be 40 hex characters)")

	// ErrMissingAddress indicates a required authorization address is
	// unset.
	ErrMissingAddress = errors.New("config: owner and manager addresses must be set")

	// ErrZeroFeeRate indicates the settlement fee rate is zero.
	ErrZeroFeeRate = errors.New("config: fee rate must be positive")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidConfigLine indicates a line in the config file is malformed.
	ErrInvalidConfigLine = errors.New("config: invalid configuration line")
)
