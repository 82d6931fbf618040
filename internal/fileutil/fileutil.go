// Package fileutil holds file permission modes shared by the commands.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for validation reports, which
// can quote parts of private API documents.
const OwnerReadWrite os.FileMode = 0o600
