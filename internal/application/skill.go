package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"factskill/internal/domain"
	"factskill/internal/infrastructure/metrics"
	"factskill/internal/ports/input"
	"factskill/internal/ports/output"
)

// fallbackErrorSpeech is spoken when even ERROR_MESSAGE cannot be resolved.
const fallbackErrorSpeech = "An error occurred."

var _ input.SkillUseCase = (*SkillService)(nil)

// Handler is one entry of the dispatch table. CanHandle must depend on the
// descriptor only.
type Handler struct {
	Name      string
	CanHandle func(req domain.RequestDescriptor) bool
	Handle    func(req domain.RequestDescriptor, tr output.Translator) (domain.Response, error)
}

// SkillService matches requests against an ordered handler table. The first
// handler whose CanHandle returns true serves the request.
type SkillService struct {
	localizer output.Localizer
	handlers  []Handler
	logger    *zap.Logger
}

type Option func(*SkillService)

// WithHandlers replaces the default handler table. The catch-all entry is
// still appended.
func WithHandlers(handlers ...Handler) Option {
	return func(s *SkillService) { s.handlers = handlers }
}

func NewSkillService(localizer output.Localizer, logger *zap.Logger, opts ...Option) *SkillService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SkillService{
		localizer: localizer,
		logger:    logger,
	}
	s.handlers = DefaultHandlers(logger)
	for _, opt := range opts {
		opt(s)
	}
	s.handlers = append(append([]Handler(nil), s.handlers...), catchAll)
	return s
}

// Handlers returns the effective dispatch table, catch-all included.
func (s *SkillService) Handlers() []Handler {
	return append([]Handler(nil), s.handlers...)
}

// Dispatch serves req. It never fails: handler errors, panics and an empty
// match all end in the localized error response.
func (s *SkillService) Dispatch(ctx context.Context, req domain.RequestDescriptor) (resp domain.Response) {
	logger := s.logger.With(
		zap.String("request_id", req.RequestID),
		zap.Stringer("kind", req.Kind),
		zap.String("intent", req.IntentName),
		zap.String("locale", req.Locale),
	)

	// The translator must exist before any handler runs.
	tr := s.localizer.For(req.Locale)

	defer func() {
		if r := recover(); r != nil {
			resp = s.handleError(logger, tr, fmt.Errorf("handler panic: %v", r))
		}
	}()

	for _, h := range s.handlers {
		if !h.CanHandle(req) {
			continue
		}
		metrics.RequestsTotal.WithLabelValues(req.Kind.String(), h.Name).Inc()
		out, err := h.Handle(req, tr)
		if err != nil {
			return s.handleError(logger.With(zap.String("handler", h.Name)), tr, err)
		}
		logger.Debug("request handled", zap.String("handler", h.Name))
		return out
	}
	return s.handleError(logger, tr, domain.ErrNoHandlerMatched)
}

// handleError renders the localized error message, falling back to a
// language-neutral sentence. It does not panic.
func (s *SkillService) handleError(logger *zap.Logger, tr output.Translator, err error) domain.Response {
	code := domain.Code(err)
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	if errors.Is(err, domain.ErrNoHandlerMatched) {
		logger.Error("dispatch table has no match, check handler configuration", zap.Error(err))
	} else {
		logger.Warn("request failed", zap.String("code", code), zap.Error(err))
	}

	speech, rerr := safeResolve(tr, domain.KeyErrorMessage)
	if rerr != nil || strings.TrimSpace(speech) == "" {
		logger.Error("error message unavailable, using neutral fallback", zap.Error(rerr))
		speech = fallbackErrorSpeech
	}
	return domain.Response{Speech: speech}
}

func safeResolve(tr output.Translator, key string) (s string, err error) {
	if tr == nil {
		return "", errors.New("no translator")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resolve %s panicked: %v", key, r)
		}
	}()
	return tr.Resolve(key)
}
