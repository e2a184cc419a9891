package editor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type State int

const (
	StateIdle State = iota
	StateDrafting
)

func (s State) String() string {
	if s == StateDrafting {
		return "drafting"
	}
	return "idle"
}

// Collection is the persisted side of a workflow. Save replaces everything.
type Collection[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
}

// Editor is the operation set exposed to the admin API.
type Editor[T any] interface {
	Kind() Kind[T]
	List(ctx context.Context) ([]T, error)
	Draft() (T, bool)
	State() State
	StartCreate(ctx context.Context) (T, error)
	StartEdit(ctx context.Context, id string) (T, error)
	UpdateDraftField(field, value string) (T, error)
	Save(ctx context.Context) (T, error)
	Cancel()
	Delete(ctx context.Context, id string, confirmed bool) error
}

type Option func(*options)

type options struct {
	newID func() string
	now   func() time.Time
}

func WithIDGenerator(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(o *options) { o.now = fn }
}

// Workflow is the Idle/Drafting state machine over one collection. It holds
// at most one draft and never keeps the collection itself between calls.
type Workflow[T any] struct {
	mu      sync.Mutex
	kind    Kind[T]
	records Collection[T]
	newID   func() string
	now     func() time.Time
	draft   *T
}

func NewWorkflow[T any](kind Kind[T], records Collection[T], opts ...Option) *Workflow[T] {
	o := options{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Workflow[T]{
		kind:    kind,
		records: records,
		newID:   o.newID,
		now:     o.now,
	}
}

func (w *Workflow[T]) Kind() Kind[T] {
	return w.kind
}

func (w *Workflow[T]) List(ctx context.Context) ([]T, error) {
	return w.records.Load(ctx)
}

// Draft returns a copy of the current draft.
func (w *Workflow[T]) Draft() (T, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft == nil {
		var zero T
		return zero, false
	}
	return w.kind.Clone(*w.draft), true
}

func (w *Workflow[T]) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft == nil {
		return StateIdle
	}
	return StateDrafting
}

// StartCreate replaces any current draft with a new record carrying a fresh id
// and default values. Nothing is persisted.
func (w *Workflow[T]) StartCreate(_ context.Context) (T, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	record := w.kind.New(w.newID(), w.now())
	w.draft = &record
	return w.kind.Clone(record), nil
}

// StartEdit drafts a copy of the stored record with the given id.
func (w *Workflow[T]) StartEdit(ctx context.Context, id string) (T, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var zero T
	records, err := w.records.Load(ctx)
	if err != nil {
		return zero, err
	}
	idx := w.indexOf(records, id)
	if idx < 0 {
		return zero, fmt.Errorf("%w: %s %s", ErrRecordNotFound, w.kind.Name(), id)
	}

	record := w.kind.Clone(records[idx])
	w.draft = &record
	return w.kind.Clone(record), nil
}

func (w *Workflow[T]) UpdateDraftField(field, value string) (T, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var zero T
	if w.draft == nil {
		return zero, ErrNoActiveDraft
	}
	if err := w.kind.SetField(w.draft, field, value); err != nil {
		return zero, err
	}
	return w.kind.Clone(*w.draft), nil
}

// Save merges the draft into the collection (in place when its id exists,
// appended otherwise), writes the full collection and returns to Idle. On a
// failed write the draft is kept.
func (w *Workflow[T]) Save(ctx context.Context) (T, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var zero T
	if w.draft == nil {
		return zero, ErrNoActiveDraft
	}

	records, err := w.records.Load(ctx)
	if err != nil {
		return zero, err
	}

	saved := w.kind.Clone(*w.draft)
	if idx := w.indexOf(records, w.kind.ID(saved)); idx >= 0 {
		records[idx] = saved
	} else {
		records = append(records, saved)
	}

	if err := w.records.Save(ctx, records); err != nil {
		return zero, err
	}

	w.draft = nil
	return saved, nil
}

func (w *Workflow[T]) Cancel() {
	w.mu.Lock()
	w.draft = nil
	w.mu.Unlock()
}

// Delete removes the record with the given id once confirmed. An unconfirmed
// call or an unknown id leaves the collection untouched. The current draft is
// not affected.
func (w *Workflow[T]) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	records, err := w.records.Load(ctx)
	if err != nil {
		return err
	}
	idx := w.indexOf(records, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s %s", ErrRecordNotFound, w.kind.Name(), id)
	}

	remaining := make([]T, 0, len(records)-1)
	remaining = append(remaining, records[:idx]...)
	remaining = append(remaining, records[idx+1:]...)
	return w.records.Save(ctx, remaining)
}

func (w *Workflow[T]) indexOf(records []T, id string) int {
	for i, r := range records {
		if w.kind.ID(r) == id {
			return i
		}
	}
	return -1
}
