// Package field manages the fields that belong to a risk type.
package field

import (
	"encoding/json"

	"github.com/ferdiebergado/riskapi/internal/model"
)

// Field is a risk type field. Its Metadata is opaque JSON.
type Field struct {
	model.Model

	RiskTypeID int64
}

type CreateParams struct {
	RiskTypeID int64
	Metadata   json.RawMessage
}

type UpdateParams struct {
	ID         int64
	RiskTypeID int64
	Metadata   json.RawMessage
}
