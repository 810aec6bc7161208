package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/petalstore/pkg/errhttp"
	"github.com/ghuser/petalstore/pkg/httpx"
	appsvcs "github.com/ghuser/petalstore/services/flower/application/services"
)

// DeleteFlowerHandler handles DELETE /flowers/{id} requests.
type DeleteFlowerHandler struct {
	svc *appsvcs.Services
}

// NewDeleteFlowerHandler returns a DeleteFlowerHandler backed by the given services.
func NewDeleteFlowerHandler(svc *appsvcs.Services) *DeleteFlowerHandler {
	return &DeleteFlowerHandler{svc: svc}
}

// Execute deletes a flower by id.
//
//	@Summary		Delete flower
//	@Description	Removes a flower from the catalog
//	@Tags			flowers
//	@Param			id	path	string	true	"Flower id (UUID)"
//	@Success		204	"No Content"
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/flowers/{id} [delete]
func (h *DeleteFlowerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid flower id")
		return
	}

	if err := h.svc.Flower.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
