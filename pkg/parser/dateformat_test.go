package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTranslateDateFormat(t *testing.T) {
	tests := []struct {
		pattern string
		layout  string
	}{
		{"MM/dd/yyyy", "01/02/2006"},
		{"yyyy-MM-dd", "2006-01-02"},
		{"yyyy-MM-dd HH:mm:ss", "2006-01-02 15:04:05"},
		{"M/d/yy", "1/2/06"},
		{"dd.MM.yyyy", "02.01.2006"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.layout, translateDateFormat(tt.pattern))
		})
	}
}

func TestTranslateDateFormatFormatsDates(t *testing.T) {
	ts := time.Date(2023, 5, 1, 10, 15, 0, 0, time.UTC)
	assert.Equal(t, "05/01/2023", ts.Format(translateDateFormat("MM/dd/yyyy")))
	assert.Equal(t, "2023-05-01 10:15:00", ts.Format(translateDateFormat("yyyy-MM-dd HH:mm:ss")))
}
