// Package risktype manages risk types and reads them together with their fields.
package risktype

import (
	"github.com/ferdiebergado/riskapi/internal/field"
	"github.com/ferdiebergado/riskapi/internal/model"
)

type RiskType struct {
	model.Model

	Fields []field.Field
}
