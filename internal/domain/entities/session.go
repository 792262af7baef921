package entities

// SessionState is the intake protocol position. Owned exclusively by the
// intake use case; the transport only stores and replays it.
type SessionState string

const (
	StateCollecting             SessionState = "collecting"
	StateAwaitingDeliveryChoice SessionState = "awaiting_delivery_choice"
	StateAwaitingConfirmation   SessionState = "awaiting_confirmation"
	StateAwaitingContacts       SessionState = "awaiting_contacts"
	StateComplete               SessionState = "complete"
)

// Contact is the name + phone captured in the AwaitingContacts step.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Session is the opaque per-user conversation state passed into and out of
// every turn. The engine never persists it; the caller stores it between
// turns and clears it on expiry.
//
// Breakdown is the quote computed when the record became complete. Option
// selection and confirmation always read from this cache so the number the
// user agrees to is the number they saw.

type Session struct {
	ID             string         `json:"id"`
	State          SessionState   `json:"state"`
	Language       Language       `json:"language"`
	LanguageLocked bool           `json:"language_locked"`
	LanguageSensed bool           `json:"language_sensed"`
	Record         ShipmentRecord `json:"record"`
	Breakdown      *CostBreakdown `json:"breakdown,omitempty"`
	AgreedTotal    float64        `json:"agreed_total"`
	Contact        *Contact       `json:"contact,omitempty"`
}

// NewSession returns an empty session in the initial state. Language
// defaults to Russian until detection or an explicit override runs.
func NewSession(id string) Session {
	return Session{
		ID:       id,
		State:    StateCollecting,
		Language: LanguageRussian,
	}
}

// Reset wipes everything except identity and the sticky language choice.
func (s *Session) Reset() {
	lang, locked, sensed := s.Language, s.LanguageLocked, s.LanguageSensed
	*s = NewSession(s.ID)
	s.Language = lang
	s.LanguageLocked = locked
	s.LanguageSensed = sensed
}
