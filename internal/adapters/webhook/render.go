package webhook

import (
	"github.com/google/uuid"

	"factskill/internal/domain"
)

const envelopeVersion = "1.0"

// toDescriptor normalizes the envelope. Requests without an id get a fresh
// one so log lines and journal rows can be correlated.
func toDescriptor(env *RequestEnvelope) domain.RequestDescriptor {
	d := domain.RequestDescriptor{
		Kind:      domain.ParseKind(env.Request.Type),
		Locale:    env.Request.Locale,
		RequestID: env.Request.RequestID,
		Reason:    env.Request.Reason,
	}
	if d.Kind == domain.KindIntent && env.Request.Intent != nil {
		d.IntentName = env.Request.Intent.Name
	}
	if d.RequestID == "" {
		d.RequestID = uuid.NewString()
	}
	return d
}

// render maps a Response onto the envelope. A reprompt keeps the session
// open; a silent response carries no speech and no session directive.
func render(resp domain.Response) ResponseEnvelope {
	env := ResponseEnvelope{Version: envelopeVersion}
	if resp.IsSilent() {
		return env
	}

	env.Response.OutputSpeech = &OutputSpeech{Type: "PlainText", Text: resp.Speech}
	if resp.HasReprompt() {
		env.Response.Reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: "PlainText", Text: resp.Reprompt}}
	}
	if resp.HasCard() {
		env.Response.Card = &Card{Type: "Simple", Title: resp.CardTitle, Content: resp.CardBody}
	}
	end := !resp.HasReprompt()
	env.Response.ShouldEndSession = &end
	return env
}
