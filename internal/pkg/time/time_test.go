package time_test

import (
	"encoding/json"
	"testing"
	"time"

	timex "github.com/ferdiebergado/riskapi/internal/pkg/time"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"Duration string", `"5s"`, 5 * time.Second, false},
		{"Compound duration string", `"1m30s"`, 90 * time.Second, false},
		{"Number of seconds", `10`, 10 * time.Second, false},
		{"Invalid duration string", `"soon"`, 0, true},
		{"Boolean", `true`, 0, true},
		{"Malformed json", `"5s`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d timex.Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("json.Unmarshal(%s) = %v, wantErr: %v", tt.input, err, tt.wantErr)
			}

			if d.Duration != tt.want {
				t.Errorf("d.Duration = %v, want: %v", d.Duration, tt.want)
			}
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	t.Parallel()

	d := timex.Duration{Duration: 90 * time.Second}
	got, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal(d) = %v, want: %v", err, nil)
	}

	const want = `"1m30s"`
	if string(got) != want {
		t.Errorf("json.Marshal(d) = %s, want: %s", got, want)
	}
}
