package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampScan(t *testing.T) {
	want := time.Date(2025, 3, 14, 15, 9, 26, 535000000, time.UTC)

	tests := []struct {
		name string
		src  any
		want time.Time
	}{
		{name: "time value", src: want.In(time.FixedZone("CET", 3600)), want: want},
		{name: "strftime text", src: "2025-03-14T15:09:26.535Z", want: want},
		{name: "rfc3339 bytes", src: []byte("2025-03-14T15:09:26.535Z"), want: want},
		{name: "datetime text", src: "2025-03-14 15:09:26", want: want.Truncate(time.Second)},
		{name: "unix epoch", src: want.Unix(), want: want.Truncate(time.Second)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ts timestamp
			require.NoError(t, ts.Scan(tc.src))
			assert.True(t, tc.want.Equal(ts.Time), "got %s want %s", ts.Time, tc.want)
			assert.Equal(t, time.UTC, ts.Location())
		})
	}
}

func TestTimestampScanErrors(t *testing.T) {
	var ts timestamp
	assert.Error(t, ts.Scan(nil))
	assert.Error(t, ts.Scan("yesterday"))
	assert.Error(t, ts.Scan(3.14))
}
