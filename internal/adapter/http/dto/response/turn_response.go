package response

import "cargokz/internal/usecase"

// TurnResponse is the engine's answer to one conversation turn: the
// localized reply, optional discrete options for the bot to render as
// buttons, and the session position for observability.
type TurnResponse struct {
	SessionID string   `json:"session_id"`
	State     string   `json:"state"`
	Language  string   `json:"language"`
	Reply     string   `json:"reply"`
	Options   []string `json:"options,omitempty"`
}

func FromTurnResult(res usecase.TurnResult) TurnResponse {
	return TurnResponse{
		SessionID: res.Session.ID,
		State:     string(res.Session.State),
		Language:  string(res.Session.Language),
		Reply:     res.Reply,
		Options:   res.Options,
	}
}
