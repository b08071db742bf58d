package engine

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/huntercalc/internal/calc"
	"github.com/udisondev/huntercalc/internal/model"
)

// Result is everything one recomputation pass produces. Observers receive it
// as a single value, so the UI never sees panels from different passes.
type Result struct {
	Pass        uuid.UUID
	Fingerprint string

	Attack    []model.StatDetail
	Defense   []model.StatDetail
	Ammo      *model.AmmoCapacities // nil for weapons without ammo
	Sharpness *model.SharpnessBar   // nil for weapons without sharpness
	Extra     model.ExtraData
}

// Compute runs all calculators over one snapshot. It is pure: stats is not
// modified and nothing in the result aliases it.
func Compute(stats *model.Stats) Result {
	return Result{
		Attack:    calc.AttackDetails(stats),
		Defense:   calc.DefenseDetails(stats),
		Ammo:      calc.AmmoCapacities(stats),
		Sharpness: calc.SharpnessBar(stats),
		Extra:     stats.ExtraData.Clone(),
	}
}

// Fingerprint hashes the snapshot's JSON encoding with BLAKE2b-256.
func Fingerprint(stats *model.Stats) (string, error) {
	data, err := json.Marshal(stats)
	if err != nil {
		return "", fmt.Errorf("encoding stats: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Observer receives every published pass.
// Publish must not call Recompute on the same engine.
type Observer interface {
	Publish(res Result)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(res Result)

// Publish calls f(res).
func (f ObserverFunc) Publish(res Result) { f(res) }

// Options configures an Engine.
type Options struct {
	Logger *slog.Logger

	// SkipUnchanged suppresses publishing when the snapshot is identical to
	// the previously published one.
	SkipUnchanged bool

	// CheckTemplates logs rows whose formulas reference undeclared variables.
	CheckTemplates bool
}

type subscription struct {
	id       int
	observer Observer
}

// Engine sequences calculator passes and publishes their results.
// Passes never overlap: a Recompute call waits for the running one.
type Engine struct {
	opts   Options
	logger *slog.Logger

	passMu          sync.Mutex // held for a whole pass
	lastFingerprint string

	subMu  sync.Mutex
	subs   []subscription
	nextID int
}

// New creates an Engine.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{opts: opts, logger: logger}
}

// Subscribe registers an observer. The returned func removes it.
func (e *Engine) Subscribe(o Observer) (unsubscribe func()) {
	e.subMu.Lock()
	defer e.subMu.Unlock()

	id := e.nextID
	e.nextID++
	e.subs = append(e.subs, subscription{id: id, observer: o})

	return func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// Recompute runs a full pass over stats and publishes the result to every
// observer, in subscription order. It returns the result and whether it was
// published; with SkipUnchanged an identical snapshot is computed but not
// published again.
func (e *Engine) Recompute(stats *model.Stats) (Result, bool) {
	e.passMu.Lock()
	defer e.passMu.Unlock()

	res := Compute(stats)
	res.Pass = uuid.New()

	fingerprint, err := Fingerprint(stats)
	if err != nil {
		e.logger.Warn("fingerprinting stats", "err", err)
	}
	res.Fingerprint = fingerprint

	if e.opts.CheckTemplates {
		e.checkTemplates(res)
	}

	if e.opts.SkipUnchanged && fingerprint != "" && fingerprint == e.lastFingerprint {
		e.logger.Debug("stats unchanged, skipping publish", "pass", res.Pass, "fingerprint", fingerprint)
		return res, false
	}
	e.lastFingerprint = fingerprint

	e.subMu.Lock()
	subs := make([]subscription, len(e.subs))
	copy(subs, e.subs)
	e.subMu.Unlock()

	for _, s := range subs {
		s.observer.Publish(res)
	}

	e.logger.Debug("stats pass published",
		"pass", res.Pass,
		"fingerprint", fingerprint,
		"observers", len(subs),
		"attack_rows", len(res.Attack),
		"defense_rows", len(res.Defense))
	return res, true
}

func (e *Engine) checkTemplates(res Result) {
	for _, rows := range [][]model.StatDetail{res.Attack, res.Defense} {
		for _, row := range rows {
			if missing := row.MissingVariables(); len(missing) > 0 {
				e.logger.Warn("formula references undeclared variables", "row", row.Name, "missing", missing)
			}
		}
	}
}
