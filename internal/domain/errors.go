package domain

import "errors"

// Domain errors.
var (
	ErrMissingTranslationKey = errors.New("missing translation key")
	ErrEmptyTranslationSet   = errors.New("empty translation set")
	ErrNoHandlerMatched      = errors.New("no handler matched request")
	ErrUnrecognizedRequest   = errors.New("unrecognized request")
	ErrEmptySpeech           = errors.New("speech is required")
)

// Code maps a domain error to a stable snake_case code, used as a log field
// and metric label. Unknown errors map to "internal".
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingTranslationKey):
		return "missing_translation_key"
	case errors.Is(err, ErrEmptyTranslationSet):
		return "empty_translation_set"
	case errors.Is(err, ErrNoHandlerMatched):
		return "no_handler_matched"
	case errors.Is(err, ErrUnrecognizedRequest):
		return "unrecognized_request"
	case errors.Is(err, ErrEmptySpeech):
		return "empty_speech"
	default:
		return "internal"
	}
}
