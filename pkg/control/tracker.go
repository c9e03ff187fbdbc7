package control

import "github.com/go-drift/easel/pkg/graphics"

// Damage describes pending dirty state: either the whole surface, or the
// conservative union of the regions marked since the last consume.
type Damage struct {
	Whole  bool
	Region graphics.Rect
}

// IsZero reports whether the damage covers nothing.
func (d Damage) IsZero() bool {
	return !d.Whole && d.Region.IsEmpty()
}

// Merge combines two damage values. Whole-surface damage subsumes any
// region; otherwise regions merge by union.
func (d Damage) Merge(other Damage) Damage {
	if d.Whole || other.Whole {
		return Damage{Whole: true}
	}
	return Damage{Region: d.Region.Union(other.Region)}
}

// WholeDamage returns damage covering the entire surface.
func WholeDamage() Damage {
	return Damage{Whole: true}
}

// RegionDamage returns damage covering a single region.
func RegionDamage(r graphics.Rect) Damage {
	return Damage{Region: r}
}

// InvalidationTracker accumulates pending dirty regions for one control.
//
// Regions accumulate by union rather than triggering an immediate render,
// so several property changes made in one logical operation (swapping two
// colors, say) batch into exactly one redraw. Once the whole surface is
// marked dirty, further region marks are no-ops: whole subsumes any part.
//
// All methods assume the single-threaded host model; there is no locking.
type InvalidationTracker struct {
	whole   bool
	pending graphics.Rect
}

// MarkDirty adds a region to the pending dirty state. Empty regions and
// marks arriving after MarkWholeDirty are no-ops.
func (t *InvalidationTracker) MarkDirty(region graphics.Rect) {
	if t.whole || region.IsEmpty() {
		return
	}
	t.pending = t.pending.Union(region)
}

// MarkWholeDirty marks the entire surface dirty, subsuming any pending
// region.
func (t *InvalidationTracker) MarkWholeDirty() {
	t.whole = true
	t.pending = graphics.Rect{}
}

// IsDirty reports whether any redraw is owed.
func (t *InvalidationTracker) IsDirty() bool {
	return t.whole || !t.pending.IsEmpty()
}

// Consume returns the pending damage and resets the tracker to clean.
func (t *InvalidationTracker) Consume() Damage {
	d := Damage{Whole: t.whole, Region: t.pending}
	t.whole = false
	t.pending = graphics.Rect{}
	return d
}
