package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildInfo(t *testing.T) {
	tests := []struct {
		name                  string
		version, date, commit string
		wantString            string
		wantReleased          bool
	}{
		{
			name:         "все поля заданы",
			version:      "1.4.0",
			date:         "2026-10-01",
			commit:       "abc123",
			wantString:   "1.4.0 (abc123, 2026-10-01)",
			wantReleased: true,
		},
		{
			name:       "пустые значения линкера",
			wantString: "N/A (N/A, N/A)",
		},
		{
			name:         "пробелы обрезаются",
			version:      " 1.4.0 ",
			date:         "  ",
			commit:       "abc123\n",
			wantString:   "1.4.0 (abc123, N/A)",
			wantReleased: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewBuildInfo(tt.version, tt.date, tt.commit)
			assert.Equal(t, tt.wantString, info.String())
			assert.Equal(t, tt.wantReleased, info.Released())
		})
	}
}
