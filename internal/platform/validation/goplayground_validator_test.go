package validation_test

import (
	"testing"

	"github.com/ferdiebergado/riskapi/internal/model"
	"github.com/ferdiebergado/riskapi/internal/platform/validation"
)

type fieldUpdate struct {
	RiskTypeID model.ID `json:"rt_id" validate:"required,gt=0"`
	Meta       string   `json:"rtf_meta"`
}

type noRules struct {
	Meta string `json:"rt_meta"`
}

func TestPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		given    any
		field    string
		hasError bool
		errMsg   string
	}{
		{"Required id is present", fieldUpdate{RiskTypeID: 3}, "rt_id", false, ""},
		{"Required id is missing", fieldUpdate{}, "rt_id", true, "rt_id is required"},
		{"Id is negative", fieldUpdate{RiskTypeID: -1}, "rt_id", true, "rt_id must be greater than 0"},
		{"Struct without rules", noRules{}, "rt_meta", false, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := validation.NewPlaygroundValidator()

			errs := v.ValidateStruct(tc.given)
			if (errs != nil) != tc.hasError {
				t.Fatalf("v.ValidateStruct(%+v) = %+v, hasError: %t", tc.given, errs, tc.hasError)
			}

			gotMsg, wantMsg := errs[tc.field], tc.errMsg
			if gotMsg != wantMsg {
				t.Errorf("errs[%q] = %q, want: %q", tc.field, gotMsg, wantMsg)
			}
		})
	}
}
