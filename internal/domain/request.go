package domain

// RequestKind is the platform request type.
type RequestKind int

const (
	KindUnknown RequestKind = iota
	KindLaunch
	KindIntent
	KindSessionEnded
)

var kindNames = map[string]RequestKind{
	"LaunchRequest":       KindLaunch,
	"IntentRequest":       KindIntent,
	"SessionEndedRequest": KindSessionEnded,
}

// ParseKind converts a platform request type (e.g. "IntentRequest") to a
// RequestKind. Unrecognized types return KindUnknown.
func ParseKind(s string) RequestKind {
	if k, ok := kindNames[s]; ok {
		return k
	}
	return KindUnknown
}

func (k RequestKind) String() string {
	switch k {
	case KindLaunch:
		return "LaunchRequest"
	case KindIntent:
		return "IntentRequest"
	case KindSessionEnded:
		return "SessionEndedRequest"
	default:
		return "Unknown"
	}
}

// RequestDescriptor is the normalized form of an inbound request. It is built
// once per call by a front-end and never modified afterwards.
type RequestDescriptor struct {
	Kind       RequestKind
	IntentName string // empty unless Kind == KindIntent
	Locale     string
	RequestID  string
	Reason     string // session-ended reason, informational
}

// IsIntent reports whether d is an intent request for one of names.
func (d RequestDescriptor) IsIntent(names ...string) bool {
	if d.Kind != KindIntent {
		return false
	}
	for _, n := range names {
		if d.IntentName == n {
			return true
		}
	}
	return false
}
