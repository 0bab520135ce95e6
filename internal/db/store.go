package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azroofops/backend/internal/models"
)

type Store struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *Store) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) InsertJobs(ctx context.Context, jobs []models.Job) (int64, error) {
	rows := make([][]any, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []any{j.ID, j.CustomerName, j.Address, j.City, j.ZipCode, j.Notes, j.OriginalTimeframe, j.DateKey, j.CreatedAt})
	}
	return s.Pool.CopyFrom(ctx, pgx.Identifier{"jobs"}, []string{"id", "customer_name", "address", "city", "zip_code", "notes", "original_timeframe", "date_key", "created_at"}, pgx.CopyFromRows(rows))
}

func (s *Store) InsertReps(ctx context.Context, reps []models.Rep) (int64, error) {
	rows := make([][]any, 0, len(reps))
	for _, r := range reps {
		rows = append(rows, []any{r.ID, r.Name})
	}
	return s.Pool.CopyFrom(ctx, pgx.Identifier{"reps"}, []string{"id", "name"}, pgx.CopyFromRows(rows))
}

func (s *Store) UpsertAssignment(ctx context.Context, tx pgx.Tx, a models.Assignment) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO assignments (job_id, rep_id, slot_id, assigned_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (job_id) DO UPDATE SET
			rep_id = EXCLUDED.rep_id,
			slot_id = EXCLUDED.slot_id,
			assigned_at = EXCLUDED.assigned_at
	`, a.JobID, a.RepID, a.SlotID, a.AssignedAt)
	return err
}

func (s *Store) ListJobs(ctx context.Context, dateKey, city, q string, limit, offset int) ([]map[string]any, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT j.id, j.customer_name, j.address, j.city, j.zip_code, j.notes, j.original_timeframe, j.date_key, j.created_at,
		a.rep_id, a.slot_id, a.assigned_at
		FROM jobs j
		LEFT JOIN assignments a ON a.job_id = j.id`
	var args []any
	var wheres []string
	if dateKey != "" {
		args = append(args, dateKey)
		wheres = append(wheres, fmt.Sprintf("j.date_key = $%d", len(args)))
	}
	if city != "" {
		args = append(args, strings.ToUpper(strings.TrimSpace(city)))
		wheres = append(wheres, fmt.Sprintf("j.city = $%d", len(args)))
	}
	if q != "" {
		args = append(args, "%"+q+"%")
		wheres = append(wheres, fmt.Sprintf("(j.address ILIKE $%d OR j.notes ILIKE $%d)", len(args), len(args)))
	}
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY j.date_key ASC, j.created_at ASC LIMIT $" + fmt.Sprint(len(args)+1) + " OFFSET $" + fmt.Sprint(len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		var (
			j          models.Job
			repID      *string
			slotID     *string
			assignedAt *time.Time
		)
		if err := rows.Scan(&j.ID, &j.CustomerName, &j.Address, &j.City, &j.ZipCode, &j.Notes, &j.OriginalTimeframe, &j.DateKey, &j.CreatedAt, &repID, &slotID, &assignedAt); err != nil {
			return nil, err
		}
		out = append(out, map[string]any{
			"job":         j,
			"rep_id":      repID,
			"slot_id":     slotID,
			"assigned_at": assignedAt,
		})
	}
	return out, rows.Err()
}

func (s *Store) GetJob(ctx context.Context, id string) (models.Job, error) {
	var j models.Job
	err := s.Pool.QueryRow(ctx, `
		SELECT id, customer_name, address, city, zip_code, notes, original_timeframe, date_key, created_at
		FROM jobs WHERE id = $1
	`, id).Scan(&j.ID, &j.CustomerName, &j.Address, &j.City, &j.ZipCode, &j.Notes, &j.OriginalTimeframe, &j.DateKey, &j.CreatedAt)
	return j, err
}

func (s *Store) ListReps(ctx context.Context) ([]models.Rep, error) {
	rows, err := s.Pool.Query(ctx, `SELECT id, name FROM reps ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Rep
	for rows.Next() {
		var r models.Rep
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ReplaceAddressIndex swaps in a freshly expanded canonical address
// index inside one transaction.
func (s *Store) ReplaceAddressIndex(ctx context.Context, entries map[string]string) (int64, error) {
	var inserted int64
	err := s.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `TRUNCATE address_index`); err != nil {
			return err
		}
		rows := make([][]any, 0, len(entries))
		for variation, externalID := range entries {
			rows = append(rows, []any{variation, externalID})
		}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{"address_index"}, []string{"variation", "external_id"}, pgx.CopyFromRows(rows))
		inserted = n
		return err
	})
	return inserted, err
}

func (s *Store) LoadAddressIndex(ctx context.Context) (map[string]string, error) {
	rows, err := s.Pool.Query(ctx, `SELECT variation, external_id FROM address_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var variation, externalID string
		if err := rows.Scan(&variation, &externalID); err != nil {
			return nil, err
		}
		out[variation] = externalID
	}
	return out, rows.Err()
}

func (s *Store) CreateRun(ctx context.Context, status string) (string, error) {
	var id string
	err := s.Pool.QueryRow(ctx, `INSERT INTO runs (status, started_at) VALUES ($1, NOW()) RETURNING id`, status).Scan(&id)
	return id, err
}

func (s *Store) FinishRun(ctx context.Context, runID string, status string, summary []byte) error {
	_, err := s.Pool.Exec(ctx, `UPDATE runs SET status = $1, summary = $2, finished_at = NOW() WHERE id = $3`, status, summary, runID)
	return err
}

func (s *Store) GetLatestRun(ctx context.Context) (map[string]any, error) {
	row := s.Pool.QueryRow(ctx, `SELECT id, started_at, finished_at, status, summary FROM runs ORDER BY started_at DESC LIMIT 1`)
	var (
		id       string
		started  time.Time
		finished *time.Time
		status   string
		summary  []byte
	)
	if err := row.Scan(&id, &started, &finished, &status, &summary); err != nil {
		return nil, err
	}
	return map[string]any{
		"id":          id,
		"started_at":  started,
		"finished_at": finished,
		"status":      status,
		"summary":     summary,
	}, nil
}
