package routes

import (
	"cargokz/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
	PathQuotes   = "/quotes"
)

func addFreightRoutes(rg *gin.RouterGroup, turnHandler *handlers.TurnHandler, quoteHandler *handlers.QuoteHandler) {
	sessions := rg.Group(PathSessions)
	{
		// One inbound message or signal per request; session state is
		// loaded and stored around the engine call.
		sessions.POST("/:id/turns", turnHandler.HandleTurn)
	}

	quotes := rg.Group(PathQuotes)
	{
		// Standalone pricing for non-conversational callers.
		quotes.POST("", quoteHandler.ComputeQuote)
	}
}
