package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cargokz/internal/domain/entities"
	"cargokz/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Discrete signals the transport may send instead of text. An option press
// is "1"/"2"; language switches carry a lang: prefix.
const (
	SignalReset      = "reset"
	signalLangPrefix = "lang:"
)

// TurnResult is what one processed inbound signal produces: the localized
// reply, optional discrete reply options for the transport to render as
// buttons, and the updated session the caller must persist.
type TurnResult struct {
	Reply   string
	Options []string
	Session entities.Session
}

// IIntakeUseCase drives one conversation session: collect, quote, choose
// option, confirm, collect contacts.
type IIntakeUseCase interface {
	HandleTurn(ctx context.Context, s entities.Session, text, signal string) (TurnResult, error)
}

type IntakeUseCase struct {
	extractor *TextExtractor
	quote     IQuoteUseCase
	formatter *QuoteFormatter
	shipments interfaces.IShipmentRepository
	log       *zap.Logger
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(
	extractor *TextExtractor,
	quote IQuoteUseCase,
	formatter *QuoteFormatter,
	shipments interfaces.IShipmentRepository,
	log *zap.Logger,
) *IntakeUseCase {
	return &IntakeUseCase{
		extractor: extractor,
		quote:     quote,
		formatter: formatter,
		shipments: shipments,
		log:       log,
	}
}

// HandleTurn processes exactly one inbound message or discrete signal. The
// session is a value: the caller keeps the returned copy. A discrete signal
// takes precedence over text parsing when both arrive.
func (u *IntakeUseCase) HandleTurn(ctx context.Context, s entities.Session, text, signal string) (TurnResult, error) {
	// Language switch is accepted from any state and only re-renders the
	// current prompt.
	if strings.HasPrefix(signal, signalLangPrefix) {
		s.Language = entities.Language(strings.TrimPrefix(signal, signalLangPrefix))
		s.LanguageLocked = true
		s.LanguageSensed = true
		return u.reprompt(s), nil
	}

	// Reset is accepted from any state, via signal or keyword.
	if signal == SignalReset || (signal == "" && u.extractor.IsReset(text)) {
		s.Reset()
		return TurnResult{Reply: u.formatter.Text(msgResetDone, s.Language), Session: s}, nil
	}

	if !s.LanguageLocked && !s.LanguageSensed && strings.TrimSpace(text) != "" {
		s.Language = DetectLanguage(text)
		s.LanguageSensed = true
	}

	input := text
	if signal != "" {
		input = signal
	}

	switch s.State {
	case entities.StateCollecting:
		return u.collect(s, text)
	case entities.StateAwaitingDeliveryChoice:
		return u.chooseOption(s, input)
	case entities.StateAwaitingConfirmation:
		return u.confirm(s, input)
	case entities.StateAwaitingContacts:
		return u.contacts(ctx, s, text)
	case entities.StateComplete:
		// Any non-reset message starts a brand-new session.
		s.Reset()
		return u.collect(s, text)
	default:
		s.Reset()
		return u.collect(s, text)
	}
}

func (u *IntakeUseCase) collect(s entities.Session, text string) (TurnResult, error) {
	rec, missing := u.extractor.Apply(text, s.Record, s.Language)
	s.Record = rec

	if len(missing) > 0 {
		return TurnResult{Reply: u.formatter.MissingPrompt(missing, s.Language), Session: s}, nil
	}

	b, err := u.quote.ComputeQuote(s.Record, s.Language)
	if err != nil {
		var ve *entities.ValidationError
		if errors.As(err, &ve) {
			return TurnResult{Reply: u.formatter.ReenterField(ve.Field, s.Language), Session: s}, nil
		}
		if mf, ok := entities.IsMissingFields(err); ok {
			return TurnResult{Reply: u.formatter.MissingPrompt(mf.Fields, s.Language), Session: s}, nil
		}
		return TurnResult{}, err
	}

	// The record is frozen for pricing from here on; choice and
	// confirmation only read the cached breakdown.
	s.Breakdown = &b
	s.State = entities.StateAwaitingDeliveryChoice
	return TurnResult{
		Reply:   u.formatter.Breakdown(b, s.Language),
		Options: []string{"1", "2"},
		Session: s,
	}, nil
}

func (u *IntakeUseCase) chooseOption(s entities.Session, input string) (TurnResult, error) {
	var n int
	switch strings.TrimSpace(input) {
	case "1":
		n = 1
	case "2":
		n = 2
	default:
		return TurnResult{
			Reply:   u.formatter.Text(msgOptionInvalid, s.Language),
			Options: []string{"1", "2"},
			Session: s,
		}, nil
	}

	if s.Breakdown == nil {
		// Cached quote lost (e.g. truncated session payload). Rebuild it
		// and say so: the fresh numbers may differ from what was shown.
		s.State = entities.StateCollecting
		res, err := u.collect(s, "")
		if err != nil {
			return res, err
		}
		res.Reply = u.formatter.Text(msgQuoteRefreshed, s.Language) + "\n" + res.Reply
		return res, nil
	}

	opt, ok := s.Breakdown.OptionByNumber(n)
	if !ok {
		return TurnResult{
			Reply:   u.formatter.Text(msgOptionInvalid, s.Language),
			Options: []string{"1", "2"},
			Session: s,
		}, nil
	}

	s.Record.DeliveryOption = opt.Option
	s.AgreedTotal = opt.Total
	s.State = entities.StateAwaitingConfirmation
	return TurnResult{Reply: u.formatter.ConfirmPrompt(opt.Total, s.Language), Session: s}, nil
}

func (u *IntakeUseCase) confirm(s entities.Session, input string) (TurnResult, error) {
	switch {
	case u.extractor.IsYes(input):
		s.State = entities.StateAwaitingContacts
		return TurnResult{Reply: u.formatter.Text(msgContactsPrompt, s.Language), Session: s}, nil
	case u.extractor.IsNo(input):
		// Declined is terminal for this record: full wipe.
		s.Reset()
		return TurnResult{Reply: u.formatter.Text(msgDeclined, s.Language), Session: s}, nil
	default:
		return TurnResult{Reply: u.formatter.Text(msgConfirmInvalid, s.Language), Session: s}, nil
	}
}

func (u *IntakeUseCase) contacts(ctx context.Context, s entities.Session, text string) (TurnResult, error) {
	contact, ok := u.extractor.ParseContact(text)
	if !ok {
		return TurnResult{Reply: u.formatter.Text(msgContactsRetry, s.Language), Session: s}, nil
	}

	s.Contact = &contact
	order := entities.FinalizedOrder{
		ID:          uuid.NewString(),
		SessionID:   s.ID,
		Record:      s.Record,
		Option:      s.Record.DeliveryOption,
		AgreedTotal: s.AgreedTotal,
		Contact:     contact,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := u.shipments.Save(ctx, order); err != nil {
		// The collaborator may fail; the conversation still completes.
		u.log.Error("failed to hand off finalized order",
			zap.String("session_id", s.ID), zap.Error(err))
	}

	s.State = entities.StateComplete
	return TurnResult{Reply: u.formatter.Text(msgComplete, s.Language), Session: s}, nil
}

// reprompt re-renders the prompt for the current state, used after a
// language switch.
func (u *IntakeUseCase) reprompt(s entities.Session) TurnResult {
	switch s.State {
	case entities.StateAwaitingDeliveryChoice:
		if s.Breakdown != nil {
			return TurnResult{Reply: u.formatter.Breakdown(*s.Breakdown, s.Language), Options: []string{"1", "2"}, Session: s}
		}
	case entities.StateAwaitingConfirmation:
		return TurnResult{Reply: u.formatter.ConfirmPrompt(s.AgreedTotal, s.Language), Session: s}
	case entities.StateAwaitingContacts:
		return TurnResult{Reply: u.formatter.Text(msgContactsPrompt, s.Language), Session: s}
	case entities.StateComplete:
		return TurnResult{Reply: u.formatter.Text(msgComplete, s.Language), Session: s}
	}
	missing := u.extractor.MissingFields(s.Record, s.Language)
	if len(missing) == 0 {
		return TurnResult{Reply: u.formatter.Text(msgResetDone, s.Language), Session: s}
	}
	return TurnResult{Reply: u.formatter.MissingPrompt(missing, s.Language), Session: s}
}
