package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "cargokz/internal/adapter/http/dto/request"
	response "cargokz/internal/adapter/http/dto/response"
	"cargokz/internal/domain/entities"
	"cargokz/internal/infrastructure/config"
	"cargokz/internal/usecase"
	"cargokz/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler serves the standalone pricing endpoint for
// non-conversational callers.

type QuoteHandler struct {
	quote  usecase.IQuoteUseCase
	tables config.Tables
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, tables config.Tables) *QuoteHandler {
	return &QuoteHandler{quote: uc, tables: tables}
}

// ComputeQuote processes POST /v1/quotes.
func (h *QuoteHandler) ComputeQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	rec := payload.ToRecord()
	rec.Zone = h.resolveZone(rec.City)

	b, err := h.quote.ComputeQuote(rec, payload.ResolveLanguage())
	if err != nil {
		if mf, ok := entities.IsMissingFields(err); ok {
			c.JSON(http.StatusUnprocessableEntity, response.MissingFieldsResponse{MissingFields: mf.Fields})
			return
		}
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(b))
}

// resolveZone matches the free-text city against the destination table.
// Unknown cities stay ZoneUnknown and price as the worst case downstream.
func (h *QuoteHandler) resolveZone(city string) entities.Zone {
	lower := strings.ToLower(city)
	for _, entry := range h.tables.Cities {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return entry.Zone
			}
		}
	}
	return entities.ZoneUnknown
}

func mapQuoteError(err error) *pkg.AppError {
	var ve *entities.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainErrorSimple("INVALID_"+strings.ToUpper(ve.Field), "Invalid "+ve.Field, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
