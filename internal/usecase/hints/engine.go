// Package hints implements hint mode: labelling the clickable, fillable or
// otherwise interesting elements of a page and its frames, narrowing them
// as the user types, and firing the selected one.
package hints

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hintkit/internal/application/port/input"
	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
)

var _ input.HintEngine = (*Engine)(nil)

// Engine runs hint rounds against the documents of one page.
type Engine struct {
	dom     output.DOMPort
	queries QueryProvider
	actions ActionProvider
	logger  output.LoggerPort

	session *session
}

// session is the state of one hint round, from Init to teardown.
type session struct {
	mode       entity.Mode
	opts       entity.Options
	query      Query
	action     Action
	labels     LabelPolicy
	visibility VisibilityPolicy

	frames  []*frameScan
	records []*hintRecord
	active  []*hintRecord
	focused *hintRecord

	textFilter string
	keyFilter  []rune
	// keyFocus holds the focus before each typed key so that a backspace
	// restores it.
	keyFocus []*hintRecord
}

// Option customises an Engine.
type Option func(*Engine)

func WithQueries(q QueryProvider) Option {
	return func(e *Engine) { e.queries = q }
}

func WithActions(a ActionProvider) Option {
	return func(e *Engine) { e.actions = a }
}

// New returns an engine with the default queries and actions.
func New(dom output.DOMPort, logger output.LoggerPort, opts ...Option) *Engine {
	e := &Engine{
		dom:     dom,
		queries: DefaultQueries{},
		actions: DefaultActions{},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init starts a new round, dropping any previous one.
func (e *Engine) Init(ctx context.Context, mode entity.Mode, opts entity.Options) (entity.Status, error) {
	if err := opts.Validate(); err != nil {
		return entity.ErrorStatus(), err
	}
	query, err := e.queries.Query(mode)
	if err != nil {
		return entity.ErrorStatus(), err
	}
	action, err := e.actions.Action(mode)
	if err != nil {
		return entity.ErrorStatus(), err
	}

	if err := e.Clear(ctx); err != nil {
		e.logger.Warn("Clearing previous round failed", "error", err)
	}

	e.session = &session{
		mode:       mode,
		opts:       opts,
		query:      query,
		action:     action,
		labels:     NewLabelPolicy(opts.Keys, opts.FixedWidth),
		visibility: NewVisibilityPolicy(opts.Visibility),
	}
	if err := e.create(ctx); err != nil {
		return entity.ErrorStatus(), errors.Join(err, e.Clear(ctx))
	}
	e.logger.Debug("Hint round started", "mode", mode.String(), "hints", len(e.session.records), "frames", len(e.session.frames))

	return e.show(ctx, true)
}

// Filter replaces the text filter. Typed keys refer to codes of the old
// filter, so the key filter is dropped as well.
func (e *Engine) Filter(ctx context.Context, text string) (entity.Status, error) {
	s := e.session
	if s == nil {
		return entity.ErrorStatus(), nil
	}
	s.textFilter = text
	s.keyFilter = nil
	s.keyFocus = nil
	return e.show(ctx, true)
}

// Update narrows the hints to the codes starting with the typed keys. Keys
// outside the hint alphabet leave the round unchanged.
func (e *Engine) Update(ctx context.Context, key rune) (entity.Status, error) {
	s := e.session
	if s == nil || !s.labels.IsKey(key) {
		return entity.ErrorStatus(), nil
	}
	s.keyFocus = append(s.keyFocus, s.focused)
	s.keyFilter = append(s.keyFilter, key)
	return e.show(ctx, true)
}

// Backspace drops the last typed key and restores the focus held before
// that key.
func (e *Engine) Backspace(ctx context.Context) (entity.Status, error) {
	s := e.session
	if s == nil || len(s.keyFilter) == 0 {
		return entity.ErrorStatus(), nil
	}
	last := len(s.keyFilter) - 1
	prev := s.keyFocus[last]
	s.keyFilter = s.keyFilter[:last]
	s.keyFocus = s.keyFocus[:last]

	status, err := e.show(ctx, false)
	if err != nil {
		return status, err
	}
	if prev != nil && prev != s.focused {
		if idx := indexOf(s.active, prev); idx >= 0 {
			return e.focusIndex(idx)
		}
	}
	return status, nil
}

// Focus moves the focus cyclically through the active hints.
func (e *Engine) Focus(ctx context.Context, back bool) (entity.Status, error) {
	s := e.session
	if s == nil || len(s.active) == 0 {
		return entity.ErrorStatus(), nil
	}
	idx := indexOf(s.active, s.focused)
	if idx < 0 {
		idx = 0
	}
	n := len(s.active)
	if back {
		idx = (idx - 1 + n) % n
	} else {
		idx = (idx + 1) % n
	}
	return e.focusIndex(idx)
}

// Fire runs the focused hint. Without one the round simply ends.
func (e *Engine) Fire(ctx context.Context) (entity.Status, error) {
	s := e.session
	if s == nil {
		return entity.Done(), nil
	}
	if s.focused == nil {
		return entity.Done(), e.Clear(ctx)
	}
	return e.fire(ctx, s.focused)
}

// FireCode runs the active hint labelled code.
func (e *Engine) FireCode(ctx context.Context, code string) (entity.Status, error) {
	s := e.session
	if s == nil {
		return entity.ErrorStatus(), nil
	}
	for idx, rec := range s.active {
		if rec.code == code {
			if _, err := e.focusIndex(idx); err != nil {
				return entity.ErrorStatus(), err
			}
			return e.fire(ctx, rec)
		}
	}
	return entity.ErrorStatus(), nil
}

// Clear removes every overlay and marker of the round and drops its state.
// Teardown continues past failing documents; their errors are joined.
func (e *Engine) Clear(ctx context.Context) error {
	s := e.session
	if s == nil {
		return nil
	}
	e.session = nil

	var errs []error
	for _, fs := range s.frames {
		for _, rec := range fs.records {
			if err := rec.target.ClearMarkers(); err != nil {
				errs = append(errs, fmt.Errorf("clear markers: %w", err))
			}
		}
		if err := fs.overlay.Remove(); err != nil {
			errs = append(errs, fmt.Errorf("remove overlay: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Active reports whether a round is in progress.
func (e *Engine) Active() bool {
	return e.session != nil
}

// Records lists all hints of the round in traversal order.
func (e *Engine) Records() []entity.HintView {
	s := e.session
	if s == nil {
		return nil
	}
	views := make([]entity.HintView, 0, len(s.records))
	for _, rec := range s.records {
		views = append(views, rec.view(indexOf(s.active, rec) >= 0, rec == s.focused))
	}
	return views
}

// show relabels the records matching the text filter and displays those
// matching the key filter. With fireLast a single remaining hint is fired
// when the round follows the last hint.
func (e *Engine) show(ctx context.Context, fireLast bool) (entity.Status, error) {
	s := e.session
	match := textMatcher(s.textFilter)
	prefix := string(s.keyFilter)

	var matching []*hintRecord
	for _, rec := range s.records {
		if match(rec.text) {
			matching = append(matching, rec)
			continue
		}
		rec.code = ""
		if err := e.hide(rec); err != nil {
			return entity.ErrorStatus(), err
		}
	}

	codes := s.labels.Codes(len(matching))
	s.active = s.active[:0]
	for i, rec := range matching {
		rec.code = codes[i]
		if !strings.HasPrefix(rec.code, prefix) {
			if err := e.hide(rec); err != nil {
				return entity.ErrorStatus(), err
			}
			continue
		}
		if err := rec.label.Show(rec.labelText()); err != nil {
			return entity.ErrorStatus(), fmt.Errorf("show label: %w", err)
		}
		if err := rec.target.SetMarker(entity.MarkerHinted, true); err != nil {
			return entity.ErrorStatus(), fmt.Errorf("mark hinted: %w", err)
		}
		s.active = append(s.active, rec)
	}

	if fireLast && s.opts.FollowLast && len(s.active) == 1 {
		if _, err := e.focusIndex(0); err != nil {
			return entity.ErrorStatus(), err
		}
		return e.fire(ctx, s.active[0])
	}

	if s.focused == nil || indexOf(s.active, s.focused) < 0 {
		return e.focusIndex(0)
	}
	return entity.Over(s.focused.target.URL()), nil
}

func (e *Engine) hide(rec *hintRecord) error {
	if err := rec.label.Hide(); err != nil {
		return fmt.Errorf("hide label: %w", err)
	}
	if err := rec.label.SetFocused(false); err != nil {
		return fmt.Errorf("unfocus label: %w", err)
	}
	if err := rec.target.SetMarker(entity.MarkerHinted, false); err != nil {
		return fmt.Errorf("unmark hinted: %w", err)
	}
	if err := rec.target.SetMarker(entity.MarkerFocused, false); err != nil {
		return fmt.Errorf("unmark focused: %w", err)
	}
	return nil
}

// focusIndex moves the focus to the active hint at idx. An index outside the
// active set leaves nothing focused.
func (e *Engine) focusIndex(idx int) (entity.Status, error) {
	s := e.session
	if prev := s.focused; prev != nil {
		s.focused = nil
		if err := prev.target.SetMarker(entity.MarkerFocused, false); err != nil {
			return entity.ErrorStatus(), fmt.Errorf("unmark focused: %w", err)
		}
		if err := prev.label.SetFocused(false); err != nil {
			return entity.ErrorStatus(), fmt.Errorf("unfocus label: %w", err)
		}
		if err := prev.target.Dispatch(entity.MouseOut, false); err != nil {
			return entity.ErrorStatus(), fmt.Errorf("dispatch mouseout: %w", err)
		}
	}

	if idx < 0 || idx >= len(s.active) {
		return entity.ErrorStatus(), nil
	}
	rec := s.active[idx]
	s.focused = rec
	if err := rec.target.SetMarker(entity.MarkerFocused, true); err != nil {
		return entity.ErrorStatus(), fmt.Errorf("mark focused: %w", err)
	}
	if err := rec.label.SetFocused(true); err != nil {
		return entity.ErrorStatus(), fmt.Errorf("focus label: %w", err)
	}
	if err := rec.target.Dispatch(entity.MouseOver, false); err != nil {
		return entity.ErrorStatus(), fmt.Errorf("dispatch mouseover: %w", err)
	}
	return entity.Over(rec.target.URL()), nil
}

// fire handles form controls first, then tears the round down (or resets
// it for another pick when it is kept open) and finally runs the mode
// action unless the form handling already produced the result.
func (e *Engine) fire(ctx context.Context, rec *hintRecord) (entity.Status, error) {
	s := e.session
	el := rec.target

	var (
		status  entity.Status
		handled bool
		err     error
	)
	if s.mode.HandlesForms() {
		status, handled, err = handleForm(el)
		if err != nil {
			return entity.ErrorStatus(), err
		}
	}

	if s.opts.KeepOpen {
		s.textFilter = ""
		s.keyFilter = nil
		s.keyFocus = nil
		if _, err := e.show(ctx, false); err != nil {
			return entity.ErrorStatus(), err
		}
	} else if err := e.Clear(ctx); err != nil {
		e.logger.Warn("Teardown after fire failed", "error", err)
	}

	if handled {
		return status, nil
	}
	status, err = s.action(el)
	if err != nil {
		return entity.ErrorStatus(), fmt.Errorf("%s action: %w", s.mode, err)
	}
	e.logger.Debug("Hint fired", "mode", s.mode.String(), "status", status.String())
	return status, nil
}

func indexOf(list []*hintRecord, rec *hintRecord) int {
	if rec == nil {
		return -1
	}
	for i, r := range list {
		if r == rec {
			return i
		}
	}
	return -1
}
