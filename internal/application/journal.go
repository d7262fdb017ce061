package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"factskill/internal/domain"
	"factskill/internal/infrastructure/metrics"
	"factskill/internal/ports/input"
	"factskill/internal/ports/output"
)

const journalTimeout = 2 * time.Second

var _ input.SkillUseCase = (*JournaledSkill)(nil)

// JournaledSkill records every served response. Journal failures are logged
// and never change the response.
type JournaledSkill struct {
	next   input.SkillUseCase
	repo   output.InteractionRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewJournaledSkill(next input.SkillUseCase, repo output.InteractionRepository, logger *zap.Logger) *JournaledSkill {
	return &JournaledSkill{
		next:   next,
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (j *JournaledSkill) Dispatch(ctx context.Context, req domain.RequestDescriptor) domain.Response {
	resp := j.next.Dispatch(ctx, req)

	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()
	err := j.repo.Record(rctx, &output.Interaction{
		RequestID:  req.RequestID,
		Kind:       req.Kind.String(),
		IntentName: req.IntentName,
		Locale:     req.Locale,
		Speech:     resp.Speech,
		Reprompt:   resp.Reprompt,
		CardTitle:  resp.CardTitle,
		ServedAt:   j.now().UTC(),
	})
	if err != nil {
		metrics.JournalFailuresTotal.Inc()
		j.logger.Warn("journal: record failed", zap.String("request_id", req.RequestID), zap.Error(err))
	}
	return resp
}
