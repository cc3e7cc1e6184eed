// Package fileutil holds file-mode constants for written configurations.
package fileutil

import "os"

// OwnerReadWrite is the mode for fixed configuration files. Gateway
// configurations can carry upstream addresses and credentials.
const OwnerReadWrite os.FileMode = 0o600
