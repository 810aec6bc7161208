package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/petalstore/pkg/errhttp"
	"github.com/ghuser/petalstore/pkg/httpx"
	appsvcs "github.com/ghuser/petalstore/services/flower/application/services"
)

// GetFlowerHandler handles GET /flowers/{id} requests.
type GetFlowerHandler struct {
	svc *appsvcs.Services
}

// NewGetFlowerHandler returns a GetFlowerHandler backed by the given services.
func NewGetFlowerHandler(svc *appsvcs.Services) *GetFlowerHandler {
	return &GetFlowerHandler{svc: svc}
}

// Execute retrieves a single flower by id.
//
//	@Summary		Get flower
//	@Description	Retrieves a flower by its id
//	@Tags			flowers
//	@Produce		json
//	@Param			id	path		string	true	"Flower id (UUID)"
//	@Success		200	{object}	APIResponse[FlowerResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/flowers/{id} [get]
func (h *GetFlowerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid flower id")
		return
	}

	flower, err := h.svc.Flower.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, success(flower))
}
