// Package upload validates user-selected files before they are handed to the
// member portal's upload path.
package upload

import (
	"fmt"

	"chapel/internal/platform/config"
)

// Candidate is a file the user selected. Only its size matters here.
type Candidate struct {
	ByteSize int64 `json:"byteSize"`
}

// IsSizeValid reports whether c is present and no larger than config.MaxUploadBytes.
func IsSizeValid(c *Candidate) bool {
	return c != nil && c.ByteSize <= config.MaxUploadBytes
}

// SizeErrorMessage is shown when IsSizeValid returns false.
func SizeErrorMessage() string {
	return fmt.Sprintf("File size must be less than %dMB", config.MaxUploadMB)
}
