package input

import (
	"context"

	"factskill/internal/domain"
)

// SkillUseCase turns a request into a response. Implementations never fail:
// internal errors are rendered as a spoken error message.
type SkillUseCase interface {
	Dispatch(ctx context.Context, req domain.RequestDescriptor) domain.Response
}
