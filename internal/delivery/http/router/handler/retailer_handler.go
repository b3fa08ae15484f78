package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RetailerHandler holds dependencies for retailer self-service and the
// admin review console.
type RetailerHandler struct {
	uc     usecase.RetailerUsecase
	logger *slog.Logger
}

// NewRetailerHandler is the constructor for RetailerHandler, injected by Fx.
func NewRetailerHandler(uc usecase.RetailerUsecase, logger *slog.Logger) *RetailerHandler {
	return &RetailerHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListMyProducts returns the retailer's own products, approved or not.
func (h *RetailerHandler) ListMyProducts(c echo.Context) error {
	retailerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	products, err := h.uc.ListMyProducts(c.Request().Context(), retailerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// SubmitProduct handles a verified retailer's product submission. The
// product enters the review queue unapproved.
func (h *RetailerHandler) SubmitProduct(c echo.Context) error {
	retailerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.SubmitProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if input == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product body is required")
	}
	input.RetailerID = retailerID

	product, err := h.uc.SubmitProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product submitted for review")
}

// UpdateOwnProduct handles a retailer's edit of their own product. Editing
// an approved product sends it back to the review queue.
func (h *RetailerHandler) UpdateOwnProduct(c echo.Context) error {
	actorID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var input *usecase.UpdateOwnProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if input == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product body is required")
	}
	input.ProductID = productID
	input.ActorID = actorID
	input.ActorRole = currentRole(c)

	product, err := h.uc.UpdateOwnProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteOwnProduct handles a retailer's removal of their own product.
func (h *RetailerHandler) DeleteOwnProduct(c echo.Context) error {
	actorID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	input := &usecase.DeleteOwnProductInput{
		ProductID: productID,
		ActorID:   actorID,
		ActorRole: currentRole(c),
	}

	if err := h.uc.DeleteOwnProduct(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// ListRetailers returns every retailer account for the admin console.
func (h *RetailerHandler) ListRetailers(c echo.Context) error {
	retailers, err := h.uc.ListRetailers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, retailers, "Retailers retrieved successfully")
}

// VerifyRetailer sets a retailer's verification flag. Admins may both
// grant and revoke.
func (h *RetailerHandler) VerifyRetailer(c echo.Context) error {
	retailerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid retailer ID")
	}

	var input *usecase.VerifyRetailerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if input == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Verification body is required")
	}
	input.RetailerID = retailerID

	retailer, err := h.uc.VerifyRetailer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, retailer, "Retailer verification updated")
}

// ListPendingProducts returns the admin review queue.
func (h *RetailerHandler) ListPendingProducts(c echo.Context) error {
	products, err := h.uc.ListPendingProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Pending products retrieved successfully")
}

// ReviewProduct records an admin's approval decision on a submitted product.
func (h *RetailerHandler) ReviewProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var input *usecase.ReviewProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if input == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Review body is required")
	}
	input.ProductID = productID

	product, err := h.uc.ReviewProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product review recorded")
}
