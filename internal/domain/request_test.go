package domain

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want RequestKind
	}{
		{"LaunchRequest", KindLaunch},
		{"IntentRequest", KindIntent},
		{"SessionEndedRequest", KindSessionEnded},
		{"CanFulfillIntentRequest", KindUnknown},
		{"", KindUnknown},
	}
	for _, tt := range tests {
		got := ParseKind(tt.in)
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if tt.want != KindUnknown && got.String() != tt.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.in)
		}
	}
}

func TestRequestDescriptor_IsIntent(t *testing.T) {
	d := RequestDescriptor{Kind: KindIntent, IntentName: IntentStop}
	if !d.IsIntent(IntentCancel, IntentStop) {
		t.Error("expected stop to match")
	}
	if d.IsIntent(IntentHelp) {
		t.Error("help must not match")
	}
	launch := RequestDescriptor{Kind: KindLaunch, IntentName: IntentStop}
	if launch.IsIntent(IntentStop) {
		t.Error("non-intent requests never match an intent name")
	}
}
