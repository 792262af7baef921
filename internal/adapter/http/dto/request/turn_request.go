package request

import "strings"

// TurnRequest is one inbound conversation signal from the transport bot.
// Signal models a non-text action (option button, reset, language switch)
// and takes precedence over Message when both are present.
type TurnRequest struct {
	Message string `json:"message"`
	Signal  string `json:"signal"`
}

func (r TurnRequest) IsEmpty() bool {
	return strings.TrimSpace(r.Message) == "" && strings.TrimSpace(r.Signal) == ""
}
