package handlers

import (
	"net/http"

	"github.com/ghuser/petalstore/pkg/errhttp"
	"github.com/ghuser/petalstore/pkg/httpx"
	pkgvalidator "github.com/ghuser/petalstore/pkg/validator"
	appsvcs "github.com/ghuser/petalstore/services/flower/application/services"
)

// CreateFlowerRequest is the request body for POST /flowers.
type CreateFlowerRequest struct {
	Name        string  `json:"name" validate:"required,max=100" example:"Rose"`
	Color       string  `json:"color" validate:"required,max=50" example:"red"`
	Description *string `json:"description" example:"A beautiful red rose"`
	Price       float64 `json:"price" validate:"gte=0" example:"25000"`
	Stock       int     `json:"stock" validate:"gte=0" example:"100"`
} // @name CreateFlowerRequest

// CreateFlowerHandler handles POST /flowers requests.
type CreateFlowerHandler struct {
	svc *appsvcs.Services
}

// NewCreateFlowerHandler returns a CreateFlowerHandler backed by the given services.
func NewCreateFlowerHandler(svc *appsvcs.Services) *CreateFlowerHandler {
	return &CreateFlowerHandler{svc: svc}
}

// Execute creates a new flower.
//
//	@Summary		Create flower
//	@Description	Creates a new flower in the catalog
//	@Tags			flowers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateFlowerRequest	true	"Flower creation request"
//	@Success		201		{object}	APIResponse[FlowerResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Router			/flowers [post]
func (h *CreateFlowerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateFlowerRequest](w, r)
	if !ok {
		return
	}

	flower, err := h.svc.Flower.Create(r.Context(), appsvcs.CreateFlowerInput{
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

	httpx.JSON(w, http.StatusCreated, successWithMessage(flower, "Flower created successfully"))
}
