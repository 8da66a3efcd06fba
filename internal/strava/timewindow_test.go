package strava

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeWindow(t *testing.T) {
	base := time.Date(2025, 5, 17, 12, 3, 3, 0, time.FixedZone("CEST", 2*60*60))

	tests := []struct {
		name    string
		after   time.Time
		before  time.Time
		wantErr bool
	}{
		{name: "valid window", after: base, before: base.Add(2 * time.Minute), wantErr: false},
		{name: "reversed bounds", after: base.Add(2 * time.Minute), before: base, wantErr: true},
		{name: "equal bounds", after: base, before: base, wantErr: true},
		{name: "one second apart", after: base, before: base.Add(time.Second), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := NewTimeWindow(tt.after, tt.before)
			if tt.wantErr {
				var rangeErr *TimeRangeError
				require.ErrorAs(t, err, &rangeErr)
				assert.Contains(t, rangeErr.Error(), tt.after.Format(time.RFC3339))
				assert.Contains(t, rangeErr.Error(), tt.before.Format(time.RFC3339))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.after.Unix(), window.AfterEpoch())
			assert.Equal(t, tt.before.Unix(), window.BeforeEpoch())
		})
	}
}
