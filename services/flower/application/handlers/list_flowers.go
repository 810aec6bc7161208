package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/petalstore/pkg/errhttp"
	"github.com/ghuser/petalstore/pkg/httpx"
	appsvcs "github.com/ghuser/petalstore/services/flower/application/services"
	flowerdomain "github.com/ghuser/petalstore/services/flower/domain"
	"github.com/ghuser/petalstore/services/flower/domain/repositories"
)

// ListFlowersHandler handles GET /flowers requests.
type ListFlowersHandler struct {
	svc *appsvcs.Services
}

// NewListFlowersHandler returns a ListFlowersHandler backed by the given services.
func NewListFlowersHandler(svc *appsvcs.Services) *ListFlowersHandler {
	return &ListFlowersHandler{svc: svc}
}

// Execute lists flowers with pagination. When either search or color is
// present the listing is filtered; otherwise all flowers are returned.
//
//	@Summary		List flowers
//	@Description	Lists flowers with pagination, optionally filtered by name substring and color
//	@Tags			flowers
//	@Produce		json
//	@Param			page		query		int		false	"Page number"		default(1)	minimum(1)
//	@Param			per_page	query		int		false	"Items per page"	default(10)	minimum(1)	maximum(100)
//	@Param			search		query		string	false	"Name substring filter (case-insensitive)"
//	@Param			color		query		string	false	"Color filter (case-insensitive exact match)"
//	@Success		200			{object}	APIResponse[flowerdomain.PaginatedResult[FlowerResponse]]
//	@Failure		500			{object}	ErrorResponse
//	@Router			/flowers [get]
func (h *ListFlowersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := flowerdomain.NewPagination(parseIntParam(q.Get("page")), parseIntParam(q.Get("per_page")))

	filter := repositories.SearchFilter{
		Name:  q.Get("search"),
		Color: q.Get("color"),
	}

	var (
		result flowerdomain.PaginatedResult[*appsvcs.FlowerResponse]
		err    error
	)
	if filter.IsZero() {
		result, err = h.svc.Flower.List(r.Context(), p)
	} else {
		result, err = h.svc.Flower.Search(r.Context(), filter, p)
	}
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, success(result))
}

// parseIntParam returns nil for absent or malformed values, letting
// NewPagination fall back to its defaults.
func parseIntParam(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
