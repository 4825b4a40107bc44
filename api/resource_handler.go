package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vijayleo46/portfolio-backend/database"
	"github.com/vijayleo46/portfolio-backend/errs"
	"github.com/vijayleo46/portfolio-backend/models"
)

// resourceHandler serves the full CRUD surface for one entity type. The
// entity's `validate` tags are the schema; the repo carries any per-entity
// read behavior (preloads, ordering). One instantiation per resource replaces
// a hand-written handler file per entity.
type resourceHandler[T models.Entity] struct {
	responder Responder
	logger    zerolog.Logger
	repo      *database.Repo[T]
	name      string
	// sanitize strips server-controlled fields (read-only associations)
	// from inbound payloads before any write. Optional.
	sanitize func(*T)
}

func newResourceHandler[T models.Entity](name string, repo *database.Repo[T], sanitize func(*T)) resourceHandler[T] {
	logger := log.With().Str("handlerName", name+"Handler").Logger()

	return resourceHandler[T]{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		name:      name,
		sanitize:  sanitize,
	}
}

// urlID extracts and parses the {id} route parameter.
func (h resourceHandler[T]) urlID(r *http.Request) (uint, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return 0, errs.NewBadRequestError("missing " + h.name + " id")
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + h.name + " id")
	}
	return uint(id), nil
}

// decodeEntity parses a request body into the entity type. The id field is
// server-controlled: whatever the client sent is discarded and replaced with
// forceID (zero for creates). A field of the wrong JSON type fails decoding
// and surfaces as a 400.
func (h resourceHandler[T]) decodeEntity(body []byte, forceID uint) (*T, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, errs.NewInvalidJSONError(err)
	}
	delete(fields, "id")
	if forceID != 0 {
		fields["id"] = json.RawMessage(strconv.FormatUint(uint64(forceID), 10))
	}

	normalized, err := json.Marshal(fields)
	if err != nil {
		return nil, errs.NewInvalidJSONError(err)
	}

	var entity T
	if err := json.Unmarshal(normalized, &entity); err != nil {
		return nil, errs.NewMalformedPayloadError(h.name, err)
	}
	return &entity, nil
}

// mergeEntity overlays a partial payload onto the stored record, keeping every
// field the payload does not mention.
func (h resourceHandler[T]) mergeEntity(existing *T, body []byte, id uint) (*T, error) {
	current, err := json.Marshal(existing)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to serialize stored "+h.name, err)
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(current, &merged); err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to serialize stored "+h.name, err)
	}

	var patch map[string]json.RawMessage
	if err := json.Unmarshal(body, &patch); err != nil {
		return nil, errs.NewInvalidJSONError(err)
	}
	for field, value := range patch {
		merged[field] = value
	}
	merged["id"] = json.RawMessage(strconv.FormatUint(uint64(id), 10))

	normalized, err := json.Marshal(merged)
	if err != nil {
		return nil, errs.NewInvalidJSONError(err)
	}

	var entity T
	if err := json.Unmarshal(normalized, &entity); err != nil {
		return nil, errs.NewMalformedPayloadError(h.name, err)
	}
	return &entity, nil
}

// list returns every record of the resource
func (h resourceHandler[T]) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entities, err := h.repo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.name+" list", err))
			return
		}

		// An empty table serializes as [], not null
		if entities == nil {
			entities = []*T{}
		}

		h.responder.WriteJSON(w, entities)
	}
}

// get returns a single record by id
func (h resourceHandler[T]) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.urlID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entity, err := h.repo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.name, err))
			return
		}
		if entity == nil {
			h.responder.WriteError(w, errs.NewNotFoundError(h.name+" not found"))
			return
		}

		h.responder.WriteJSON(w, entity)
	}
}

// create validates and inserts a new record, echoing it back with its
// server-assigned id
func (h resourceHandler[T]) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		entity, err := h.decodeEntity(body, 0)
		if err != nil {
			h.logger.Error().Err(err).Str("body", string(body)).Msg("Failed to decode request body")
			h.responder.WriteError(w, err)
			return
		}

		if h.sanitize != nil {
			h.sanitize(entity)
		}

		if err := validateEntity(entity); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.repo.Add(entity); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", h.name, err))
			return
		}

		// Reload so defaults and preloaded associations come back filled in
		created, err := h.repo.FindByID((*entity).GetID())
		if err != nil || created == nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", h.name, err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// update replaces the record's fields wholesale (PUT)
func (h resourceHandler[T]) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.urlID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.repo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.name, err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError(h.name+" not found"))
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		entity, err := h.decodeEntity(body, id)
		if err != nil {
			h.logger.Error().Err(err).Str("body", string(body)).Msg("Failed to decode request body")
			h.responder.WriteError(w, err)
			return
		}

		if h.sanitize != nil {
			h.sanitize(entity)
		}

		if err := validateEntity(entity); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.repo.Update(entity); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", h.name, err))
			return
		}

		updated, err := h.repo.FindByID(id)
		if err != nil || updated == nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", h.name, err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// patch applies only the provided fields (PATCH)
func (h resourceHandler[T]) patch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.urlID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.repo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.name, err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError(h.name+" not found"))
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		entity, err := h.mergeEntity(existing, body, id)
		if err != nil {
			h.logger.Error().Err(err).Str("body", string(body)).Msg("Failed to merge patch body")
			h.responder.WriteError(w, err)
			return
		}

		if h.sanitize != nil {
			h.sanitize(entity)
		}

		if err := validateEntity(entity); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.repo.Update(entity); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", h.name, err))
			return
		}

		updated, err := h.repo.FindByID(id)
		if err != nil || updated == nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", h.name, err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// delete removes a record by id
func (h resourceHandler[T]) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.urlID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.repo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.name, err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError(h.name+" not found"))
			return
		}

		if err := h.repo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", h.name, err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": h.name + " deleted successfully",
		})
	}
}
