// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/gwlint/gwerrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// The returned error is a *gwerrors.ConfigError carrying noSourceMsg or
// multiSourceMsg.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &gwerrors.ConfigError{Option: "input", Message: noSourceMsg}
	case sourceCount > 1:
		return &gwerrors.ConfigError{Option: "input", Value: sourceCount, Message: multiSourceMsg}
	default:
		return nil
	}
}
