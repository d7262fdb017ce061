package domain

import (
	"fmt"
	"strings"
)

// Response is what a handler returns for one request. Empty optional fields
// mean "absent".
type Response struct {
	Speech    string
	Reprompt  string
	CardTitle string
	CardBody  string
}

// Fields are the inputs to Compose.
type Fields struct {
	Speech    string
	Reprompt  string
	CardTitle string
	CardBody  string
}

// Compose validates fields and builds a Response. Speech is mandatory;
// reprompt and card fields are copied as given.
func Compose(f Fields) (Response, error) {
	if strings.TrimSpace(f.Speech) == "" {
		return Response{}, fmt.Errorf("compose: %w", ErrEmptySpeech)
	}
	return Response{
		Speech:    f.Speech,
		Reprompt:  f.Reprompt,
		CardTitle: f.CardTitle,
		CardBody:  f.CardBody,
	}, nil
}

// Silent returns the empty response used to acknowledge a session end.
func Silent() Response {
	return Response{}
}

func (r Response) IsSilent() bool    { return r.Speech == "" }
func (r Response) HasReprompt() bool { return r.Reprompt != "" }
func (r Response) HasCard() bool     { return r.CardTitle != "" || r.CardBody != "" }
