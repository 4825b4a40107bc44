package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vijayleo46/portfolio-backend/database"
	"github.com/vijayleo46/portfolio-backend/errs"
	"github.com/vijayleo46/portfolio-backend/models"
)

type contactMessageHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      *database.Repo[models.ContactMessage]
}

func newContactMessageHandler(repo *database.Repo[models.ContactMessage]) contactMessageHandler {
	logger := log.With().Str("handlerName", "contactMessageHandler").Logger()

	return contactMessageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
	}
}

// create validates and persists one contact-form submission, echoing the
// stored record back. Nothing else happens: no dedup and no outbound mail.
func (h contactMessageHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var message models.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		message.ID = 0

		if err := validateEntity(&message); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.repo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact message", err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, message)
	}
}
