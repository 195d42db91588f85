package app

import (
	"net/http"

	"github.com/ferdiebergado/riskapi/internal/field"
	"github.com/ferdiebergado/riskapi/internal/middleware"
	"github.com/ferdiebergado/riskapi/internal/platform/router"
	"github.com/ferdiebergado/riskapi/internal/platform/validation"
	"github.com/ferdiebergado/riskapi/internal/risktype"
	"github.com/ferdiebergado/riskapi/internal/system"
)

type handlers struct {
	system   *system.Handler
	riskType *risktype.Handler
	field    *field.Handler
	metrics  http.Handler
}

func mountSystemRoutes(r router.Router, h *handlers) {
	r.Get("/{$}", h.system.Index)
	r.Get("/build", h.system.Build)
	r.Get("/healthz", h.system.Health)
	r.Get("/metrics", h.metrics.ServeHTTP)
}

func mountRiskTypeRoutes(r router.Router, h *handlers, maxBodySize int64) {
	r.Get("/risk_types", h.riskType.List)
	r.Post("/risk_types", h.riskType.Create,
		middleware.CheckContentType,
		middleware.DecodePayload[risktype.CreateRequest](maxBodySize))
	r.Options("/risk_types", h.system.Options)

	r.Get("/risk_types/{id}", h.riskType.Get)
	r.Put("/risk_types/{id}", h.riskType.Update,
		middleware.CheckContentType,
		middleware.DecodePayload[risktype.UpdateRequest](maxBodySize))
	r.Delete("/risk_types/{id}", h.riskType.Delete)
	r.Options("/risk_types/{id}", h.system.Options)
}

func mountFieldRoutes(r router.Router, h *handlers, validator validation.Validator, maxBodySize int64) {
	create := []router.Middleware{
		middleware.CheckContentType,
		middleware.DecodePayload[field.CreateRequest](maxBodySize),
	}
	update := []router.Middleware{
		middleware.CheckContentType,
		middleware.DecodePayload[field.UpdateRequest](maxBodySize),
		middleware.ValidateInput[field.UpdateRequest](validator),
	}

	// {id} is the parent risk type for GET and POST but the field itself for
	// PUT and DELETE. Existing clients depend on this.
	r.Get("/risk_type_field/{id}", h.field.List)
	r.Post("/risk_type_field/{id}", h.field.Create, create...)
	r.Put("/risk_type_field/{id}", h.field.Update, update...)
	r.Delete("/risk_type_field/{id}", h.field.Delete)
	r.Options("/risk_type_field/{id}", h.system.Options)

	r.Get("/risk_types/{id}/fields", h.field.List)
	r.Post("/risk_types/{id}/fields", h.field.Create, create...)
	r.Options("/risk_types/{id}/fields", h.system.Options)

	r.Get("/risk_type_fields/{id}", h.field.Get)
	r.Put("/risk_type_fields/{id}", h.field.Update, update...)
	r.Delete("/risk_type_fields/{id}", h.field.Delete)
	r.Options("/risk_type_fields/{id}", h.system.Options)
}

// routes registers every endpoint and wraps the router with the handlers that
// must also see unmatched requests.
func routes(r router.Router, h *handlers, validator validation.Validator, maxBodySize int64) http.Handler {
	mountSystemRoutes(r, h)
	mountRiskTypeRoutes(r, h, maxBodySize)
	mountFieldRoutes(r, h, validator, maxBodySize)

	return middleware.CORS(middleware.RequestID(r))
}
