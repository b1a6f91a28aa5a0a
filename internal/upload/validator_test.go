package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chapel/internal/platform/config"
)

func TestIsSizeValid(t *testing.T) {
	tests := []struct {
		name string
		c    *Candidate
		want bool
	}{
		{"nil candidate", nil, false},
		{"empty file", &Candidate{ByteSize: 0}, true},
		{"one kilobyte", &Candidate{ByteSize: 1024}, true},
		{"exactly at limit", &Candidate{ByteSize: 2 * 1024 * 1024}, true},
		{"one byte over", &Candidate{ByteSize: 2*1024*1024 + 1}, false},
		{"ten megabytes", &Candidate{ByteSize: 10 * 1024 * 1024}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSizeValid(tt.c))
		})
	}
}

func TestSizeErrorMessage(t *testing.T) {
	msg := SizeErrorMessage()
	assert.Contains(t, msg, "2MB")
	assert.Equal(t, msg, SizeErrorMessage(), "message is independent of any candidate")
	assert.Equal(t, 2, config.MaxUploadMB)
}
