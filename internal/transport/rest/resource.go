package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/resource-registry/internal/domain"
	"github.com/heartmarshall/resource-registry/pkg/ctxutil"
)

// resourceService defines the minimal interface needed by ResourceHandler.
type resourceService interface {
	Get(ctx context.Context, key string) (*domain.Resource, error)
	Create(ctx context.Context, res *domain.Resource, actorID uuid.UUID) (*domain.Resource, error)
	Update(ctx context.Context, key string, res *domain.Resource, force bool, actorID uuid.UUID) error
	Patch(ctx context.Context, key string, p domain.Patch, actorID uuid.UUID) error
	Delete(ctx context.Context, key string, actorID uuid.UUID) error
	List(ctx context.Context, filter domain.ListFilter) (*domain.Page[domain.Resource], error)
	History(ctx context.Context, key string, limit int) ([]domain.AuditRecord, error)
}

// ResourceHandler serves the /v0/resources endpoints.
type ResourceHandler struct {
	svc          resourceService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewResourceHandler creates a ResourceHandler.
func NewResourceHandler(svc resourceService, logger *slog.Logger, maxBodyBytes int64) *ResourceHandler {
	return &ResourceHandler{
		svc:          svc,
		log:          logger.With("handler", "resource"),
		maxBodyBytes: maxBodyBytes,
	}
}

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

type resourceData struct {
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	OwnerID           *string `json:"ownerId"`
	ManagementGroupID *string `json:"managementGroupId"`
}

type resourceRequest struct {
	Key string `json:"key"`
	resourceData
}

type patchRequest struct {
	Fields []string      `json:"fields"`
	Data   *resourceData `json:"data"`
}

type resourceResponse struct {
	Key               string  `json:"key"`
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	OwnerID           string  `json:"ownerId"`
	ManagementGroupID *string `json:"managementGroupId"`
	CreatedAt         int64   `json:"createdAt"`
	CreatedBy         string  `json:"createdBy"`
	UpdatedAt         int64   `json:"updatedAt"`
	UpdatedBy         string  `json:"updatedBy"`
}

type pageResponse struct {
	Data []resourceResponse `json:"data"`
	Next *string            `json:"next"`
}

type auditRecordResponse struct {
	ID        string         `json:"id"`
	Key       string         `json:"key"`
	ActorID   string         `json:"actorId"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	CreatedAt int64          `json:"createdAt"`
}

// toDomain converts wire data, reporting bad UUIDs under prefix.
func (d resourceData) toDomain(prefix string) (domain.ResourceData, []domain.FieldError) {
	var errs []domain.FieldError
	out := domain.ResourceData{Name: d.Name, Description: d.Description}

	if d.OwnerID != nil {
		id, err := uuid.Parse(*d.OwnerID)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: prefix + "ownerId", Message: "must be a UUID"})
		}
		out.OwnerID = id
	}
	if d.ManagementGroupID != nil {
		id, err := uuid.Parse(*d.ManagementGroupID)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: prefix + "managementGroupId", Message: "must be a UUID"})
		}
		out.ManagementGroupID = &id
	}
	return out, errs
}

// toDomain converts and shape-checks a full record.
func (req resourceRequest) toDomain() (*domain.Resource, error) {
	data, errs := req.resourceData.toDomain("")
	res := &domain.Resource{Key: req.Key, ResourceData: data}

	if err := res.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(dedupeUUIDErrors(errs))
	}
	return res, nil
}

// dedupeUUIDErrors drops "required" for a path that already failed UUID
// parsing.
func dedupeUUIDErrors(errs []domain.FieldError) []domain.FieldError {
	bad := make(map[string]bool)
	for _, e := range errs {
		if e.Message == "must be a UUID" {
			bad[e.Field] = true
		}
	}
	out := errs[:0]
	for _, e := range errs {
		if e.Message == "required" && bad[e.Field] {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (req patchRequest) toDomain() (domain.Patch, error) {
	var errs []domain.FieldError
	if len(req.Fields) == 0 {
		errs = append(errs, domain.FieldError{Field: "fields", Message: "must not be empty"})
	}
	if req.Data == nil {
		errs = append(errs, domain.FieldError{Field: "data", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.Patch{}, domain.NewValidationErrors(errs)
	}

	data, errs := req.Data.toDomain("data.")
	p, err := domain.NewPatch(req.Fields, data)
	if err != nil {
		return domain.Patch{}, err
	}
	if err := p.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}
	if len(errs) > 0 {
		return domain.Patch{}, domain.NewValidationErrors(dedupeUUIDErrors(errs))
	}
	return p, nil
}

func toResourceResponse(r domain.Resource) resourceResponse {
	resp := resourceResponse{
		Key:         r.Key,
		Name:        r.Name,
		Description: r.Description,
		OwnerID:     r.OwnerID.String(),
		CreatedAt:   r.CreatedAt.UnixMilli(),
		CreatedBy:   r.CreatedBy.String(),
		UpdatedAt:   r.UpdatedAt.UnixMilli(),
		UpdatedBy:   r.UpdatedBy.String(),
	}
	if r.ManagementGroupID != nil {
		s := r.ManagementGroupID.String()
		resp.ManagementGroupID = &s
	}
	return resp
}

func toAuditRecordResponse(rec domain.AuditRecord) auditRecordResponse {
	changes := rec.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	return auditRecordResponse{
		ID:        rec.ID,
		Key:       rec.ResourceKey,
		ActorID:   rec.ActorID.String(),
		Action:    rec.Action.String(),
		Changes:   changes,
		CreatedAt: rec.CreatedAt.UnixMilli(),
	}
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// Create handles POST /v0/resources.
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req resourceRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	res, err := req.toDomain()
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), res, actorID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/v0/resources/"+url.PathEscape(created.Key))
	writeJSON(w, http.StatusCreated, toResourceResponse(*created))
}

// List handles GET /v0/resources.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	page, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := pageResponse{Data: make([]resourceResponse, 0, len(page.Data)), Next: page.Next}
	for _, res := range page.Data {
		resp.Data = append(resp.Data, toResourceResponse(res))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /v0/resources/{key}.
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toResourceResponse(*res))
}

// Update handles PUT /v0/resources/{key}?force=bool.
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	key := r.PathValue("key")

	force, err := parseBool(r.URL.Query().Get("force"), "force")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req resourceRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if req.Key != key {
		writeError(w, r, h.log, domain.NewBadRequest("key in path and body must match"))
		return
	}
	res, err := req.toDomain()
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.svc.Update(r.Context(), key, res, force, actorID); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Patch handles PATCH /v0/resources/{key}.
func (h *ResourceHandler) Patch(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req patchRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	p, err := req.toDomain()
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.svc.Patch(r.Context(), r.PathValue("key"), p, actorID); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /v0/resources/{key}.
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), r.PathValue("key"), actorID); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /v0/resources/{key}/history?limit=n.
func (h *ResourceHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, err := parseInt(r.URL.Query().Get("limit"), "limit")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	records, err := h.svc.History(r.Context(), r.PathValue("key"), limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := make([]auditRecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toAuditRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

// actor returns the caller identity set by the identity middleware and
// answers 400 when there is none.
func (h *ResourceHandler) actor(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, r, h.log, domain.NewBadRequest("missing user identity"))
		return uuid.Nil, false
	}
	return userID, true
}

// ---------------------------------------------------------------------------
// Query parsing
// ---------------------------------------------------------------------------

func parseListFilter(r *http.Request) (domain.ListFilter, error) {
	q := r.URL.Query()
	var filter domain.ListFilter
	var errs []domain.FieldError

	if raw := q.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "pageSize", Message: "must be an integer"})
		}
		filter.PageSize = n
	}
	filter.PageToken = q.Get("pageToken")

	for field, dst := range map[string]**uuid.UUID{
		"ownerId":           &filter.OwnerID,
		"managementGroupId": &filter.ManagementGroupID,
	} {
		raw := q.Get(field)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be a UUID"})
			continue
		}
		*dst = &id
	}

	if q.Has("name") {
		name := q.Get("name")
		filter.Name = &name
	}

	if raw := q.Get("sort"); strings.TrimSpace(raw) != "" {
		sorts, err := domain.ParseSort(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "sort", Message: err.Error()})
		}
		filter.Sort = sorts
	}

	if len(errs) > 0 {
		return domain.ListFilter{}, domain.NewValidationErrors(errs)
	}
	return filter, nil
}

func parseBool(raw, field string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError(field, "must be a boolean")
	}
	return v, nil
}

func parseInt(raw, field string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(field, "must be an integer")
	}
	return v, nil
}
