package output

import (
	"context"
	"time"
)

// Interaction is one served response, as recorded in the journal.
type Interaction struct {
	RequestID  string
	Kind       string
	IntentName string
	Locale     string
	Speech     string
	Reprompt   string
	CardTitle  string
	ServedAt   time.Time
}

type InteractionRepository interface {
	Record(ctx context.Context, interaction *Interaction) error
}
