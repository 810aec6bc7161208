package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/petalstore/pkg/errhttp"
	"github.com/ghuser/petalstore/pkg/httpx"
	pkgvalidator "github.com/ghuser/petalstore/pkg/validator"
	appsvcs "github.com/ghuser/petalstore/services/flower/application/services"
)

// UpdateFlowerRequest is the request body for PUT /flowers/{id}.
// All fields are optional; omitted fields are left unchanged.
type UpdateFlowerRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=100" example:"Red Rose"`
	Color       *string  `json:"color" validate:"omitempty,max=50" example:"crimson"`
	Description *string  `json:"description" example:"A deep crimson rose"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0" example:"30000"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0" example:"150"`
} // @name UpdateFlowerRequest

// UpdateFlowerHandler handles PUT /flowers/{id} requests.
type UpdateFlowerHandler struct {
	svc *appsvcs.Services
}

// NewUpdateFlowerHandler returns an UpdateFlowerHandler backed by the given services.
func NewUpdateFlowerHandler(svc *appsvcs.Services) *UpdateFlowerHandler {
	return &UpdateFlowerHandler{svc: svc}
}

// Execute applies a partial update to an existing flower.
//
//	@Summary		Update flower
//	@Description	Updates the provided fields of an existing flower
//	@Tags			flowers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Flower id (UUID)"
//	@Param			request	body		UpdateFlowerRequest	true	"Flower update request"
//	@Success		200		{object}	APIResponse[FlowerResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/flowers/{id} [put]
func (h *UpdateFlowerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid flower id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateFlowerRequest](w, r)
	if !ok {
		return
	}

	flower, err := h.svc.Flower.Update(r.Context(), id, appsvcs.UpdateFlowerInput{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, successWithMessage(flower, "Flower updated successfully"))
}
