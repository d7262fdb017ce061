package application

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"factskill/internal/domain"
	"factskill/internal/ports/output"
)

// DefaultHandlers returns the skill's handler table in priority order.
func DefaultHandlers(logger *zap.Logger) []Handler {
	return []Handler{
		{
			Name: "GetNewFact",
			CanHandle: func(req domain.RequestDescriptor) bool {
				return req.Kind == domain.KindLaunch || req.IsIntent(domain.IntentGetNewFact)
			},
			Handle: handleGetNewFact,
		},
		{
			Name: "Help",
			CanHandle: func(req domain.RequestDescriptor) bool {
				return req.IsIntent(domain.IntentHelp)
			},
			Handle: promptHandler(domain.KeyHelpMessage, domain.KeyHelpReprompt),
		},
		{
			Name: "Exit",
			CanHandle: func(req domain.RequestDescriptor) bool {
				return req.IsIntent(domain.IntentCancel, domain.IntentStop)
			},
			Handle: promptHandler(domain.KeyStopMessage, ""),
		},
		{
			Name: "Fallback",
			CanHandle: func(req domain.RequestDescriptor) bool {
				return req.IsIntent(domain.IntentFallback)
			},
			Handle: promptHandler(domain.KeyFallbackMessage, domain.KeyFallbackReprompt),
		},
		{
			Name: "SessionEnded",
			CanHandle: func(req domain.RequestDescriptor) bool {
				return req.Kind == domain.KindSessionEnded
			},
			Handle: func(req domain.RequestDescriptor, _ output.Translator) (domain.Response, error) {
				logger.Info("session ended", zap.String("request_id", req.RequestID), zap.String("reason", req.Reason))
				return domain.Silent(), nil
			},
		},
	}
}

// catchAll accepts every request, so dispatch always finds a match.
var catchAll = Handler{
	Name:      "Unhandled",
	CanHandle: func(domain.RequestDescriptor) bool { return true },
	Handle: func(req domain.RequestDescriptor, _ output.Translator) (domain.Response, error) {
		return domain.Response{}, fmt.Errorf("%w: %s %q", domain.ErrUnrecognizedRequest, req.Kind, req.IntentName)
	},
}

func handleGetNewFact(_ domain.RequestDescriptor, tr output.Translator) (domain.Response, error) {
	fact, err := tr.Resolve(domain.KeyFacts)
	if err != nil {
		return domain.Response{}, err
	}
	intro, err := tr.Resolve(domain.KeyGetFactMessage)
	if err != nil {
		return domain.Response{}, err
	}
	title, err := tr.Resolve(domain.KeySkillName)
	if err != nil {
		return domain.Response{}, err
	}
	return domain.Compose(domain.Fields{
		Speech:    strings.TrimSpace(intro) + " " + fact,
		CardTitle: title,
		CardBody:  fact,
	})
}

// promptHandler speaks speechKey and, when repromptKey is set, keeps the
// session open with that reprompt.
func promptHandler(speechKey, repromptKey string) func(domain.RequestDescriptor, output.Translator) (domain.Response, error) {
	return func(_ domain.RequestDescriptor, tr output.Translator) (domain.Response, error) {
		speech, err := tr.Resolve(speechKey)
		if err != nil {
			return domain.Response{}, err
		}
		var reprompt string
		if repromptKey != "" {
			if reprompt, err = tr.Resolve(repromptKey); err != nil {
				return domain.Response{}, err
			}
		}
		return domain.Compose(domain.Fields{Speech: speech, Reprompt: reprompt})
	}
}
