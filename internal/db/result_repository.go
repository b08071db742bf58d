package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/huntercalc/internal/engine"
)

// ErrPassNotFound is returned by Get for an unknown pass ID.
var ErrPassNotFound = errors.New("pass not found")

// Record is a stored pass.
type Record struct {
	Result    engine.Result
	CreatedAt time.Time
}

// ResultRepository stores published passes in PostgreSQL.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new result repository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// Save inserts one pass. Saving the same pass twice is a no-op.
func (r *ResultRepository) Save(ctx context.Context, res engine.Result) error {
	sections, err := encodeSections(res)
	if err != nil {
		return fmt.Errorf("encode pass %s: %w", res.Pass, err)
	}

	if _, err := r.pool.Exec(ctx,
		`INSERT INTO passes (pass, fingerprint, attack, defense, ammo, sharpness, extra)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (pass) DO NOTHING`,
		res.Pass.String(), res.Fingerprint,
		sections[0], sections[1], sections[2], sections[3], sections[4]); err != nil {
		return fmt.Errorf("insert pass %s: %w", res.Pass, err)
	}
	return nil
}

// Get loads one pass by ID.
// Returns ErrPassNotFound if it was never saved.
func (r *ResultRepository) Get(ctx context.Context, pass uuid.UUID) (Record, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT pass::text, fingerprint, attack, defense, ammo, sharpness, extra, created_at
		 FROM passes WHERE pass = $1`, pass.String())

	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, fmt.Errorf("get pass %s: %w", pass, ErrPassNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get pass %s: %w", pass, err)
	}
	return rec, nil
}

// Recent returns up to limit passes, newest first.
func (r *ResultRepository) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT pass::text, fingerprint, attack, defense, ammo, sharpness, extra, created_at
		 FROM passes ORDER BY created_at DESC, pass LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query passes: %w", err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pass row: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pass rows: %w", err)
	}
	return result, nil
}

// encodeSections marshals attack, defense, ammo, sharpness and extra data,
// in column order.
func encodeSections(res engine.Result) ([5][]byte, error) {
	var out [5][]byte
	values := [5]any{res.Attack, res.Defense, res.Ammo, res.Sharpness, res.Extra}
	for i, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return out, err
		}
		out[i] = data
	}
	return out, nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var (
		rec                                  Record
		pass                                 string
		attack, defense, ammo, sharp, extras []byte
	)
	if err := row.Scan(&pass, &rec.Result.Fingerprint, &attack, &defense, &ammo, &sharp, &extras, &rec.CreatedAt); err != nil {
		return Record{}, err
	}

	id, err := uuid.Parse(pass)
	if err != nil {
		return Record{}, fmt.Errorf("parse pass id %q: %w", pass, err)
	}
	rec.Result.Pass = id

	targets := []struct {
		data []byte
		dst  any
	}{
		{attack, &rec.Result.Attack},
		{defense, &rec.Result.Defense},
		{ammo, &rec.Result.Ammo},
		{sharp, &rec.Result.Sharpness},
		{extras, &rec.Result.Extra},
	}
	for _, t := range targets {
		if len(t.data) == 0 {
			continue
		}
		if err := json.Unmarshal(t.data, t.dst); err != nil {
			return Record{}, fmt.Errorf("decode pass %s: %w", pass, err)
		}
	}
	return rec, nil
}

// Recorder saves every published pass. Failures are logged, never returned
// to the engine.
type Recorder struct {
	repo    *ResultRepository
	timeout time.Duration
	logger  *slog.Logger
}

// Compile-time check.
var _ engine.Observer = (*Recorder)(nil)

// NewRecorder creates an observer that writes passes through repo.
func NewRecorder(repo *ResultRepository, timeout time.Duration, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{repo: repo, timeout: timeout, logger: logger}
}

// Publish saves res.
func (r *Recorder) Publish(res engine.Result) {
	ctx := context.Background()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	if err := r.repo.Save(ctx, res); err != nil {
		r.logger.Error("recording pass", "pass", res.Pass, "err", err)
		return
	}
	r.logger.Debug("pass recorded", "pass", res.Pass)
}
