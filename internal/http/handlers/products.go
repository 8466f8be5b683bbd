package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"productcatalog/internal/domain"
	"productcatalog/internal/http/middleware"
	"productcatalog/internal/services"

	"github.com/gin-gonic/gin"
)

// ProductHandler wires the REST product surface to the product service. The
// store is injected once at router construction; services are built per
// request so they carry the request id.
type ProductHandler struct {
	Store services.ProductStore
}

func (h ProductHandler) service(c *gin.Context) services.ProductService {
	return services.ProductService{Store: h.Store, RequestID: middleware.GetRequestID(c)}
}

// GET /api/products
func (h ProductHandler) List(c *gin.Context) {
	filter, page, err := parseListParams(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	products, err := h.service(c).List(c.Request.Context(), filter, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h ProductHandler) GetByID(c *gin.Context) {
	product, err := h.service(c).GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// POST /api/products
func (h ProductHandler) Create(c *gin.Context) {
	var in domain.ProductInput
	if !bindJSONOrError(c, &in) {
		return
	}
	result, err := h.service(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PUT /api/products/:id
func (h ProductHandler) Update(c *gin.Context) {
	var in domain.ProductInput
	if !bindJSONOrError(c, &in) {
		return
	}
	result, err := h.service(c).Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DELETE /api/products/:id
func (h ProductHandler) Delete(c *gin.Context) {
	result, err := h.service(c).Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/products/report — current catalog as a price-list PDF, accepting
// the same filter/sort parameters as the list endpoint.
func (h ProductHandler) Report(c *gin.Context) {
	filter, page, err := parseListParams(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.ReportService{Store: h.Store, RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.PriceList(c.Request.Context(), filter, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// parseListParams reads the read-call query parameters. Malformed numbers
// are validation errors, not silent defaults; range checks happen later in
// PageSpec.Validate so REST and GraphQL share one rule set.
func parseListParams(c *gin.Context) (domain.FilterSpec, domain.PageSpec, error) {
	var filter domain.FilterSpec
	page := domain.DefaultPage()

	if raw := c.Query("name_contains"); raw != "" {
		filter.NameContains = &raw
	}
	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, page, domain.ValidationError{Field: "min_price", Msg: "must be a number", Err: err}
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, page, domain.ValidationError{Field: "max_price", Msg: "must be a number", Err: err}
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, page, domain.ValidationError{Field: "limit", Msg: "must be an integer", Err: err}
		}
		page.Limit = v
	}
	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, page, domain.ValidationError{Field: "skip", Msg: "must be an integer", Err: err}
		}
		page.Skip = v
	}
	if raw := strings.TrimSpace(c.Query("sort_field")); raw != "" {
		page.SortField = raw
	}
	if raw := strings.TrimSpace(c.Query("direction")); raw != "" {
		page.Direction = raw
	}

	return filter, page, nil
}
