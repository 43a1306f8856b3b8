package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ExperienceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewExperienceRepo(db *dbpg.DB) *ExperienceRepository {
	return &ExperienceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + `
              FROM experiences
              WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}

	e, err := scanExperience(row)
	if err != nil {
		return nil, err
	}

	slots, err := r.slotsByExperience(ctx, []string{e.ID})
	if err != nil {
		return nil, err
	}
	e.Slots = slots[e.ID]

	return e, nil
}

func (r *ExperienceRepository) List(ctx context.Context, filter domain.ExperienceFilter) ([]*domain.Experience, error) {
	where, args := listConditions(filter)

	query := `SELECT ` + experienceColumns + `
              FROM experiences
              WHERE ` + where + `
              ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	var (
		res []*domain.Experience
		ids []string
	)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
		ids = append(ids, e.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	if len(res) == 0 {
		return res, nil
	}

	slots, err := r.slotsByExperience(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range res {
		e.Slots = slots[e.ID]
	}

	return res, nil
}

func (r *ExperienceRepository) slotsByExperience(ctx context.Context, ids []string) (map[string][]domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
              FROM slots
              WHERE experience_id = ANY($1)
              ORDER BY date, time_slot`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	res := make(map[string][]domain.Slot, len(ids))
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		res[s.ExperienceID] = append(res[s.ExperienceID], s)
	}

	return res, rows.Err()
}

func listConditions(filter domain.ExperienceFilter) (string, []any) {
	conds := []string{"is_active = TRUE"}
	var args []any

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, likePattern(filter.Location))
		conds = append(conds, fmt.Sprintf(`location ILIKE $%d ESCAPE '\'`, len(args)))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`(title ILIKE $%[1]d ESCAPE '\' OR description ILIKE $%[1]d ESCAPE '\' OR location ILIKE $%[1]d ESCAPE '\')`, n,
		))
	}

	return strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern ищет подстроку буквально: % и _ из ввода не работают как шаблон.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
