package evict

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Engine runs the selectors against a page set. It is safe for concurrent
// use; the random source is the only shared state and is guarded.
type Engine struct {
	mu     *sync.Mutex
	rnd    Rand
	logger *zap.Logger
}

type Option func(*Engine)

// WithRand injects the source used for NRU's tie-break.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rnd = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		mu:     &sync.Mutex{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return e
}

// Intn draws from the injected source under the engine lock.
func (e *Engine) Intn(n int) int {
	var v int
	locked(e.mu, func() {
		v = e.rnd.Intn(n)
	})
	return v
}

// Select runs a single policy.
func (e *Engine) Select(p Policy, ps *PageSet) (Result, error) {
	var (
		res Result
		err error
	)
	switch p {
	case NRU:
		res, err = SelectNRU(ps, e)
	case FIFO:
		res, err = SelectFIFO(ps)
	case LRU:
		res, err = SelectLRU(ps)
	case SecondChance:
		res, err = SelectSecondChance(ps)
	default:
		err = &Error{Code: ErrCodeUnknownPolicy, Op: "select", Message: fmt.Sprintf("unknown policy %d", int(p))}
	}
	if err != nil {
		e.logger.Warn("selection failed", zap.Stringer("policy", p), zap.Int("pages", ps.Len()), zap.Error(err))
		return Result{}, err
	}
	e.logger.Debug("page selected",
		zap.Stringer("policy", p),
		zap.Int("page", res.Page.ID()),
		zap.Int("class", int(res.Class)),
		zap.Bool("fallback", res.Fallback),
		zap.Int("pages", ps.Len()),
	)
	return res, nil
}

// Evaluate runs all four policies against the same snapshot. It fails on
// the first selector error; no partial report is returned.
func (e *Engine) Evaluate(ps *PageSet) (Report, error) {
	rep := Report{Size: ps.Len()}
	slots := map[Policy]*Result{
		NRU:          &rep.NRU,
		FIFO:         &rep.FIFO,
		LRU:          &rep.LRU,
		SecondChance: &rep.SecondChance,
	}
	for _, p := range Policies {
		res, err := e.Select(p, ps)
		if err != nil {
			return Report{}, fmt.Errorf("evaluate %d pages: %w", ps.Len(), err)
		}
		*slots[p] = res
	}
	return rep, nil
}

func locked(m sync.Locker, h func()) {
	m.Lock()
	defer m.Unlock()
	h()
}
