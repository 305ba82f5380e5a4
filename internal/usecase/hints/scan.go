package hints

import (
	"context"
	"errors"
	"fmt"
	"math"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
)

// frameScan is the scan state of one visited document.
type frameScan struct {
	doc     output.Document
	bounds  entity.Rect
	overlay output.Overlay
	records []*hintRecord
}

type scanner struct {
	s      *session
	logger output.LoggerPort
	count  int
}

// create walks the top document and every accessible nested frame and
// fills the session with hint records.
func (e *Engine) create(ctx context.Context) error {
	top, err := e.dom.TopDocument(ctx)
	if err != nil {
		return fmt.Errorf("top document: %w", err)
	}
	sc := &scanner{s: e.session, logger: e.logger}
	return sc.scan(ctx, top, top.Viewport(), entity.Point{}, false)
}

// scan collects candidates of doc within bounds. origin is the position of
// doc's viewport in top-level coordinates. Candidates of nested frames must
// lie entirely within bounds; the top document only needs an overlap. All reads of a document happen
// before its first mutation, so a faulting document leaves no overlay
// behind.
func (sc *scanner) scan(ctx context.Context, doc output.Document, bounds entity.Rect, origin entity.Point, nested bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := sc.s
	if sc.count >= s.opts.MaxHints {
		return nil
	}

	candidates, err := doc.Elements(s.query.Selector)
	if err != nil {
		sc.logger.Warn("Skipping document", "error", err)
		return nil
	}

	var picked []output.Element
	for _, el := range candidates {
		if sc.count >= s.opts.MaxHints {
			break
		}
		if !s.query.Match(el) || !s.visibility.Visible(doc, el, bounds) {
			continue
		}
		if nested && !bounds.Encloses(el.Rect()) {
			continue
		}
		picked = append(picked, el)
		sc.count++
	}

	if len(picked) > 0 {
		if err := sc.decorate(doc, bounds, origin, picked); err != nil {
			return err
		}
	}

	frames, err := doc.Frames()
	if err != nil {
		sc.logger.Warn("Skipping frames", "error", err)
		return nil
	}
	for _, f := range frames {
		if sc.count >= s.opts.MaxHints {
			break
		}
		fe := f.Element()
		if !s.visibility.Visible(doc, fe, bounds) {
			continue
		}
		fdoc, err := f.Document()
		if err != nil {
			if !errors.Is(err, output.ErrFrameInaccessible) {
				sc.logger.Warn("Skipping frame", "error", err)
			} else {
				sc.logger.Debug("Skipping inaccessible frame", "url", fe.URL())
			}
			continue
		}

		rect := fe.Rect()
		child := bounds.Translate(-rect.X, -rect.Y).Intersect(fdoc.Viewport())
		if child.Empty() {
			continue
		}
		childOrigin := entity.Point{X: origin.X + rect.X, Y: origin.Y + rect.Y}
		if err := sc.scan(ctx, fdoc, child, childOrigin, true); err != nil {
			return err
		}
	}
	return nil
}

// decorate creates the overlay of doc and one hidden label per element. The
// frame state is registered before the first label so that Clear reaches
// everything added here even when a later step fails.
func (sc *scanner) decorate(doc output.Document, bounds entity.Rect, origin entity.Point, picked []output.Element) error {
	overlay, err := doc.NewOverlay(sc.s.opts.Style)
	if err != nil {
		sc.logger.Warn("Skipping document without overlay", "error", err)
		sc.count -= len(picked)
		return nil
	}
	fs := &frameScan{doc: doc, bounds: bounds, overlay: overlay}
	sc.s.frames = append(sc.s.frames, fs)

	offset := doc.ScrollOffset()
	for _, el := range picked {
		rect := el.Rect()
		pos := entity.Point{
			X: math.Max(rect.X+offset.X, offset.X),
			Y: math.Max(rect.Y+offset.Y, offset.Y),
		}
		label, err := overlay.AddLabel(pos)
		if err != nil {
			return fmt.Errorf("add label: %w", err)
		}
		rec := newRecord(el, label, entity.Point{
			X: origin.X + math.Max(rect.X, 0),
			Y: origin.Y + math.Max(rect.Y, 0),
		})
		fs.records = append(fs.records, rec)
		sc.s.records = append(sc.s.records, rec)
		if err := el.SetMarker(entity.MarkerCandidate, true); err != nil {
			return fmt.Errorf("mark candidate: %w", err)
		}
	}

	if err := overlay.Commit(); err != nil {
		return fmt.Errorf("commit overlay: %w", err)
	}
	return nil
}
