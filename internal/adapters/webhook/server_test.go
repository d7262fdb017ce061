package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"factskill/internal/domain"
)

type recordingSkill struct {
	resp domain.Response
	got  []domain.RequestDescriptor
}

func (r *recordingSkill) Dispatch(_ context.Context, req domain.RequestDescriptor) domain.Response {
	r.got = append(r.got, req)
	return r.resp
}

const launchBody = `{
	"version": "1.0",
	"session": {"new": true, "sessionId": "s-1", "application": {"applicationId": "amzn1.ask.skill.test"}},
	"request": {"type": "LaunchRequest", "requestId": "r-1", "locale": "de-DE"}
}`

func post(t *testing.T, s *Server, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/skill", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App().Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestSkillEndpoint_Launch(t *testing.T) {
	skill := &recordingSkill{resp: domain.Response{Speech: "Hier ist dein Fakt: x", CardTitle: "Weltraumwissen", CardBody: "x"}}
	s := NewServer(skill, "", zap.NewNop())

	resp := post(t, s, launchBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var env ResponseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Response.OutputSpeech == nil || env.Response.OutputSpeech.Text != "Hier ist dein Fakt: x" {
		t.Errorf("outputSpeech = %+v", env.Response.OutputSpeech)
	}
	if env.Response.Card == nil || env.Response.Card.Title != "Weltraumwissen" {
		t.Errorf("card = %+v", env.Response.Card)
	}
	if env.Response.ShouldEndSession == nil || !*env.Response.ShouldEndSession {
		t.Error("session should end without a reprompt")
	}

	if len(skill.got) != 1 {
		t.Fatalf("dispatch calls = %d, want 1", len(skill.got))
	}
	got := skill.got[0]
	if got.Kind != domain.KindLaunch || got.Locale != "de-DE" || got.RequestID != "r-1" {
		t.Errorf("descriptor = %+v", got)
	}
}

func TestSkillEndpoint_StatusCodes(t *testing.T) {
	tests := []struct {
		name  string
		appID string
		body  string
		want  int
	}{
		{"malformed json", "", `{"request":`, http.StatusBadRequest},
		{"application mismatch", "amzn1.ask.skill.other", launchBody, http.StatusForbidden},
		{"application match", "amzn1.ask.skill.test", launchBody, http.StatusOK},
		{"no check configured", "", `{"request":{"type":"SomethingNew"}}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skill := &recordingSkill{resp: domain.Response{Speech: "ok"}}
			s := NewServer(skill, tt.appID, zap.NewNop())
			resp := post(t, s, tt.body)
			if resp.StatusCode != tt.want {
				body, _ := io.ReadAll(resp.Body)
				t.Errorf("status = %d, want %d (body %s)", resp.StatusCode, tt.want, body)
			}
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	s := NewServer(&recordingSkill{}, "", zap.NewNop())

	for _, path := range []string{"/healthz", "/metrics"} {
		resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s status = %d", path, resp.StatusCode)
		}
	}
}

func TestRender(t *testing.T) {
	t.Run("reprompt keeps session open", func(t *testing.T) {
		env := render(domain.Response{Speech: "help", Reprompt: "what now?"})
		if env.Response.Reprompt == nil || env.Response.Reprompt.OutputSpeech.Text != "what now?" {
			t.Fatalf("reprompt = %+v", env.Response.Reprompt)
		}
		if *env.Response.ShouldEndSession {
			t.Error("shouldEndSession = true, want false")
		}
		if env.Response.Card != nil {
			t.Error("card rendered without card fields")
		}
	})

	t.Run("silent response is empty", func(t *testing.T) {
		env := render(domain.Silent())
		if env.Response.OutputSpeech != nil || env.Response.ShouldEndSession != nil {
			t.Errorf("silent response rendered %+v", env.Response)
		}
		if env.Version != envelopeVersion {
			t.Errorf("version = %q", env.Version)
		}
	})
}

func TestToDescriptor(t *testing.T) {
	env := &RequestEnvelope{Request: Request{Type: "IntentRequest", Locale: "en-US", Intent: &Intent{Name: "AMAZON.HelpIntent"}}}
	d := toDescriptor(env)
	if !d.IsIntent("AMAZON.HelpIntent") {
		t.Errorf("descriptor = %+v", d)
	}
	if d.RequestID == "" {
		t.Error("missing request id was not generated")
	}

	ended := toDescriptor(&RequestEnvelope{Request: Request{Type: "SessionEndedRequest", Reason: "USER_INITIATED", Intent: &Intent{Name: "ignored"}}})
	if ended.Kind != domain.KindSessionEnded || ended.Reason != "USER_INITIATED" || ended.IntentName != "" {
		t.Errorf("session ended descriptor = %+v", ended)
	}
}

func TestApplicationIDPrefersContext(t *testing.T) {
	env := &RequestEnvelope{Session: &Session{Application: Application{ApplicationID: "from-session"}}}
	if got := env.applicationID(); got != "from-session" {
		t.Errorf("applicationID = %q", got)
	}
	env.Context = &Context{}
	env.Context.System.Application.ApplicationID = "from-context"
	if got := env.applicationID(); got != "from-context" {
		t.Errorf("applicationID = %q", got)
	}
}
