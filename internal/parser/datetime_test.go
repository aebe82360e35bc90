package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "minutes", input: "2025/01/15 09:00", want: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)},
		{name: "seconds", input: "2025/01/15 09:00:45", want: time.Date(2025, 1, 15, 9, 0, 45, 0, time.UTC)},
		{name: "surrounding space", input: "  2025/12/31 23:59 ", want: time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)},
		{name: "leap day", input: "2024/02/29 00:00", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "not a leap year", input: "2025/02/29 00:00", wantErr: true},
		{name: "month out of range", input: "2025/13/01 00:00", wantErr: true},
		{name: "day out of range", input: "2025/04/31 00:00", wantErr: true},
		{name: "hour out of range", input: "2025/01/15 24:00", wantErr: true},
		{name: "minute out of range", input: "2025/01/15 09:60", wantErr: true},
		{name: "second out of range", input: "2025/01/15 09:00:60", wantErr: true},
		{name: "dashes", input: "2025-01-15 09:00", wantErr: true},
		{name: "date only", input: "2025/01/15", wantErr: true},
		{name: "too many clock parts", input: "2025/01/15 09:00:00:00", wantErr: true},
		{name: "short year", input: "25/01/15 09:00", wantErr: true},
		{name: "signed field", input: "2025/+1/15 09:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrFormat))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestFormatDateTime_RoundTrip(t *testing.T) {
	inputs := []string{
		"2025/01/15 09:00",
		"2025/01/15 09:00:45",
		"1999/12/31 23:59:59",
		"2024/02/29 12:30",
	}
	for _, in := range inputs {
		first, err := ParseDateTime(in)
		require.NoError(t, err)

		out := FormatDateTime(first)
		assert.Equal(t, in, out)

		second, err := ParseDateTime(out)
		require.NoError(t, err)
		assert.True(t, first.Equal(second))
	}
}
