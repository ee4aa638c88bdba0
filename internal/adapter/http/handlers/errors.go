package handlers

import (
	"errors"
	"net/http"

	"topup_store/internal/usecase"
	"topup_store/pkg"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(message string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", message, http.StatusBadRequest)
}

// mapError turns use case sentinels into the HTTP error taxonomy.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSKU),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCustomerNo),
		errors.Is(err, usecase.ErrInvalidMethod),
		errors.Is(err, usecase.ErrInvalidRefID),
		errors.Is(err, usecase.ErrInvalidProductSKU),
		errors.Is(err, usecase.ErrInvalidProductPrice),
		errors.Is(err, usecase.ErrInvalidGatewayMode),
		errors.Is(err, usecase.ErrInvalidNicknameRequest):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidImage), errors.Is(err, usecase.ErrEmptyImage):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE", "File must be an image", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageTooLarge):
		return pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Image is too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrPasswordRequired):
		return pkg.NewDomainErrorSimple("PASSWORD_REQUIRED", "Password required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPassword):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Wrong password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNicknameNotFound):
		return pkg.NewDomainErrorSimple("NICKNAME_NOT_FOUND", "Account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSupplierNotConfigured):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_CONFIGURED", "Supplier is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayRequestFailed):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Failed to create transaction", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSupplierRequestFailed):
		return pkg.NewDomainError("SUPPLIER_ERROR", "Failed to pull supplier price list", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrNicknameLookupFailed):
		return pkg.NewDomainError("NICKNAME_SERVICE_ERROR", "Nickname service unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
