package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"factskill/internal/ports/output"
)

var _ output.InteractionRepository = (*InteractionRepository)(nil)

// execer is the subset of pgxpool.Pool used by the repository.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type InteractionRepository struct {
	db execer
}

func NewInteractionRepository(db execer) *InteractionRepository {
	return &InteractionRepository{db: db}
}

const insertInteraction = `
INSERT INTO interactions (request_id, kind, intent_name, locale, speech, reprompt, card_title, served_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *InteractionRepository) Record(ctx context.Context, in *output.Interaction) error {
	_, err := r.db.Exec(ctx, insertInteraction,
		in.RequestID,
		in.Kind,
		in.IntentName,
		in.Locale,
		in.Speech,
		in.Reprompt,
		in.CardTitle,
		in.ServedAt,
	)
	if err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}
	return nil
}
