package risktype

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ferdiebergado/riskapi/internal/field"
	"github.com/ferdiebergado/riskapi/internal/model"
	"github.com/ferdiebergado/riskapi/internal/pkg/message"
	"github.com/ferdiebergado/riskapi/internal/pkg/web"
)

type Service interface {
	List(ctx context.Context) ([]RiskType, error)
	Create(ctx context.Context, meta json.RawMessage) (RiskType, error)
	Find(ctx context.Context, id int64) (RiskType, error)
	Update(ctx context.Context, id int64, meta json.RawMessage) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type Data struct {
	ID       int64           `json:"rt_id"`
	Metadata json.RawMessage `json:"rt_meta"`
	Fields   []field.Data    `json:"risk_type_fields"`
}

func NewData(rt RiskType) Data {
	return Data{
		ID:       rt.ID,
		Metadata: rt.Metadata,
		Fields:   field.NewDataList(rt.Fields),
	}
}

type ListResponse struct {
	web.Envelope
	RiskTypes []Data `json:"risk_types"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	riskTypes, err := h.svc.List(r.Context())
	if err != nil {
		web.RespondError(w, err)
		return
	}

	data := make([]Data, 0, len(riskTypes))
	for _, rt := range riskTypes {
		data = append(data, NewData(rt))
	}

	web.OK(w, http.StatusOK, &ListResponse{Envelope: web.Success(), RiskTypes: data})
}

type CreateRequest struct {
	Metadata json.RawMessage `json:"rt_meta"`
}

type CreateResponse struct {
	web.Envelope
	ID      int64  `json:"rt_id"`
	Message string `json:"message"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[CreateRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	rt, err := h.svc.Create(r.Context(), req.Metadata)
	if err != nil {
		web.RespondError(w, err)
		return
	}

	web.OK(w, http.StatusOK, &CreateResponse{
		Envelope: web.Success(),
		ID:       rt.ID,
		Message:  message.RiskTypeAdded,
	})
}

type GetResponse struct {
	web.Envelope
	RiskType Data `json:"risk_type"`
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rt, err := h.svc.Find(r.Context(), id)
	if err != nil {
		web.RespondError(w, err)
		return
	}

	web.OK(w, http.StatusOK, &GetResponse{Envelope: web.Success(), RiskType: NewData(rt)})
}

type UpdateRequest struct {
	Metadata json.RawMessage `json:"rt_meta"`
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	req, err := web.ParamsFromContext[UpdateRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.Update(r.Context(), id, req.Metadata); err != nil {
		web.RespondError(w, err)
		return
	}

	web.OK(w, http.StatusOK, web.NewMessageResponse(message.RiskTypeUpdated))
}

// Delete removes the risk type and, through the foreign key, its fields.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		web.RespondError(w, err)
		return
	}

	web.OK(w, http.StatusOK, web.NewMessageResponse(message.RiskTypeRemoved))
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := model.ParseID(r.PathValue("id"))
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidID, nil)
		return 0, false
	}
	return id, true
}
