package field

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ferdiebergado/riskapi/internal/model"
	"github.com/ferdiebergado/riskapi/internal/pkg/message"
	"github.com/ferdiebergado/riskapi/internal/pkg/web"
)

type Service interface {
	List(ctx context.Context, riskTypeID int64) ([]Field, error)
	Create(ctx context.Context, params CreateParams) (Field, error)
	Find(ctx context.Context, id int64) (Field, error)
	Update(ctx context.Context, params UpdateParams) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Data is the wire form of a field.
type Data struct {
	ID       int64           `json:"rtf_id"`
	Metadata json.RawMessage `json:"rtf_meta"`
}

func NewData(f Field) Data {
	return Data{ID: f.ID, Metadata: f.Metadata}
}

// NewDataList never returns nil so that an empty collection encodes as [].
func NewDataList(fields []Field) []Data {
	data := make([]Data, 0, len(fields))
	for _, f := range fields {
		data = append(data, NewData(f))
	}
	return data
}

type ListResponse struct {
	web.Envelope
	Fields []Data `json:"risk_type_fields"`
}

// List responds with the fields of the risk type named in the path.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	riskTypeID, ok := pathID(w, r)
	if !ok {
		return
	}

	fields, err := h.svc.List(r.Context(), riskTypeID)
	if err != nil {
		web.RespondError(w, err)
		return
	}

	web.OK(w, http.StatusOK, &ListResponse{
		Envelope: web.Success(),
		Fields:   NewDataList(fields),
	})
}

type CreateRequest struct {
	Metadata json.RawMessage `json:"rtf_meta"`
}

type CreateResponse struct {
	web.Envelope
	ID      int64  `json:"rtf_id"`
	Message string `json:"message"`
}

// Create adds a field to the risk type named in the path.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	riskTypeID, ok := pathID(w, r)
	if !ok {
		return
	}

	req, err := web.ParamsFromContext[CreateRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	f, err := h.svc.Create(r.Context(), CreateParams{RiskTypeID: riskTypeID, Metadata: req.Metadata})
	if err != nil {
		web.RespondError(w, err)
		return
	}

	web.OK(w, http.StatusOK, &CreateResponse{
		Envelope: web.Success(),
		ID:       f.ID,
		Message:  message.FieldAdded,
	})
}

type GetResponse struct {
	web.Envelope
	Field Data `json:"risk_type_field"`
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	f, err := h.svc.Find(r.Context(), id)
	if err != nil {
		web.RespondError(w, err)
		return
	}

	web.OK(w, http.StatusOK, &GetResponse{Envelope: web.Success(), Field: NewData(f)})
}

type UpdateRequest struct {
	RiskTypeID model.ID        `json:"rt_id" validate:"required,gt=0"`
	Metadata   json.RawMessage `json:"rtf_meta"`
}

// Update overwrites the parent and metadata of the field named in the path.
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

	params := UpdateParams{
		ID:         id,
		RiskTypeID: int64(req.RiskTypeID),
		Metadata:   req.Metadata,
	}
	if err := h.svc.Update(r.Context(), params); err != nil {
		web.RespondError(w, err)
		return
	}

	web.OK(w, http.StatusOK, web.NewMessageResponse(message.FieldUpdated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		web.RespondError(w, err)
		return
	}

	web.OK(w, http.StatusOK, web.NewMessageResponse(message.FieldRemoved))
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := model.ParseID(r.PathValue("id"))
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidID, nil)
		return 0, false
	}
	return id, true
}
