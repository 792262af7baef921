package handlers

import (
	"net/http"
	"strings"

	request "cargokz/internal/adapter/http/dto/request"
	response "cargokz/internal/adapter/http/dto/response"
	"cargokz/internal/domain/entities"
	"cargokz/internal/usecase"
	"cargokz/internal/usecase/interfaces"
	"cargokz/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTurnPayload = pkg.NewDomainErrorSimple("INVALID_TURN_INPUT", "Invalid turn payload", http.StatusBadRequest)
	errInvalidSessionID   = pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Invalid session id", http.StatusBadRequest)
)

// TurnHandler is the transport entry point of the intake protocol: one
// inbound message or signal per request, session state loaded and stored
// around the call. The engine itself stays stateless.

type TurnHandler struct {
	intake   usecase.IIntakeUseCase
	sessions interfaces.ISessionStore
}

func NewTurnHandler(intake usecase.IIntakeUseCase, sessions interfaces.ISessionStore) *TurnHandler {
	return &TurnHandler{intake: intake, sessions: sessions}
}

// HandleTurn processes POST /v1/sessions/:id/turns.
func (h *TurnHandler) HandleTurn(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(errInvalidSessionID.HTTPStatus, errInvalidSessionID.ToHTTPError())
		return
	}

	var payload request.TurnRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsEmpty() {
		c.JSON(errInvalidTurnPayload.HTTPStatus, errInvalidTurnPayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	sess, found, err := h.sessions.Get(ctx, id)
	if err != nil {
		appErr := pkg.NewDomainError("SESSION_LOAD_FAILED", "Failed to load session", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !found {
		sess = entities.NewSession(id)
	}

	res, err := h.intake.HandleTurn(ctx, sess, payload.Message, payload.Signal)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.sessions.Put(ctx, res.Session); err != nil {
		appErr := pkg.NewDomainError("SESSION_SAVE_FAILED", "Failed to store session", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTurnResult(res))
}
