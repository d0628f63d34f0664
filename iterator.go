package textops

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// Mask is the constraint for per-domain category bitmasks. Every boundary
// domain (grapheme, word, sentence, line) defines its own mask type, so that
// e.g. a word class cannot accidentally be tested against a line-break rule.
// A code-point may belong to several classes at once; classes are single
// bits, OR-ed into a mask. The zero mask is reserved as the end-of-text
// sentinel.
type Mask interface {
	~uint32 | ~uint64
}

// CategoryFunc looks up the category mask for a single code-point.
// Lookups are pure; the underlying tables are immutable after setup.
type CategoryFunc[C Mask] func(rune) C

// An Iterator is a cursor over a sequence of code-points, exposing the
// category mask of the current code-point (Cur) and of the one following it
// (La). La is zero, the end-of-text sentinel, when the current code-point
// is the last one.
//
// Iterators are created (or borrowed from an IteratorPool) per scan and are
// not safe for concurrent use.
type Iterator[C Mask] struct {
	text     []rune
	category CategoryFunc[C]
	pos      int // code-point index of the current code-point
	cur, la  C
	mark     checkpoint[C]
}

type checkpoint[C Mask] struct {
	pos     int
	cur, la C
	open    bool
}

// NewIterator creates an iterator over text, positioned on the code-point at
// offset. offset must be in the range 0 ≤ offset < len(text); this is not
// checked here but by the exported boundary functions.
func NewIterator[C Mask](text []rune, offset int, category CategoryFunc[C]) *Iterator[C] {
	it := &Iterator[C]{}
	it.Reset(text, offset, category)
	return it
}

// Reset re-initializes an iterator for a new scan, e.g. after borrowing it
// from a pool.
func (it *Iterator[C]) Reset(text []rune, offset int, category CategoryFunc[C]) {
	it.text = text
	it.category = category
	it.pos = offset
	it.cur = it.at(offset)
	it.la = it.at(offset + 1)
	it.mark.open = false
}

func (it *Iterator[C]) at(pos int) C {
	if pos >= len(it.text) {
		return 0 // end of text
	}
	return it.category(it.text[pos])
}

// Pos returns the code-point index of the current code-point.
func (it *Iterator[C]) Pos() int {
	return it.pos
}

// Cur returns the category mask of the current code-point.
func (it *Iterator[C]) Cur() C {
	return it.cur
}

// La returns the category mask of the code-point after the current one,
// or zero at the end of the text.
func (it *Iterator[C]) La() C {
	return it.la
}

// Rune returns the current code-point itself. Rules usually operate on
// category masks only, but a few (East Asian width checks in line breaking,
// for instance) need the code-point value.
func (it *Iterator[C]) Rune() rune {
	return it.text[it.pos]
}

// LaRune returns the code-point after the current one, or 0 at end of text.
func (it *Iterator[C]) LaRune() rune {
	if it.pos+1 >= len(it.text) {
		return 0
	}
	return it.text[it.pos+1]
}

// Advance shifts the lookahead into the current position and refreshes the
// lookahead from the following code-point (or the end-of-text sentinel).
func (it *Iterator[C]) Advance() {
	it.pos++
	it.cur = it.la
	it.la = it.at(it.pos + 1)
}

// Absorb consumes a run of code-points matching match, each optionally
// followed by a run of code-points matching extend, while leaving the
// current category untouched. This implements the "treat X (Extend|Format)*
// as X" family of rules: the absorbed code-points become part of the current
// segment without ever becoming current themselves.
func (it *Iterator[C]) Absorb(match, extend C) {
	for it.la&match != 0 {
		it.pos++
		it.la = it.at(it.pos + 1)
		for extend != 0 && it.la&extend != 0 {
			it.pos++
			it.la = it.at(it.pos + 1)
		}
	}
}

// Begin opens a checkpoint for a speculative lookahead. Only a single
// checkpoint may be open at a time; nesting is a programming error and
// panics.
func (it *Iterator[C]) Begin() {
	if it.mark.open {
		panic("textops.Iterator: nested Begin(); only one checkpoint may be open")
	}
	it.mark = checkpoint[C]{pos: it.pos, cur: it.cur, la: it.la, open: true}
}

// Rollback restores the position saved by Begin and closes the checkpoint.
func (it *Iterator[C]) Rollback() {
	if !it.mark.open {
		panic("textops.Iterator: Rollback() without Begin()")
	}
	it.pos = it.mark.pos
	it.cur = it.mark.cur
	it.la = it.mark.la
	it.mark.open = false
}

// Commit discards the checkpoint opened by Begin, keeping the current
// position.
func (it *Iterator[C]) Commit() {
	if !it.mark.open {
		panic("textops.Iterator: Commit() without Begin()")
	}
	it.mark.open = false
}

// CheckOffset validates a start offset against a text, as required by all
// boundary functions. It panics for offsets outside 0 ≤ offset < n, as
// out-of-range offsets are contract violations, never silently clamped.
func CheckOffset(offset, n int) {
	if offset < 0 || offset >= n {
		panic(fmt.Sprintf("textops: start offset out of range, %d in text of length %d", offset, n))
	}
}

// --- Iterator pooling ------------------------------------------------------

// Boundary scans are short-lived and may run once per character of every
// indexed string. To avoid allocating an iterator per call we pool them,
// one pool per boundary domain.

// An IteratorPool hands out iterators for one category domain.
// The zero value is not usable; create pools with NewIteratorPool.
type IteratorPool[C Mask] struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

// NewIteratorPool creates a pool of iterators. Pools have unbounded capacity
// and never block; exhaustion simply allocates.
func NewIteratorPool[C Mask]() *IteratorPool[C] {
	p := &IteratorPool[C]{ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Iterator[C]{}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	p.opool = pool.NewObjectPool(p.ctx, factory, config)
	return p
}

// Borrow fetches an iterator from the pool and resets it for a scan of text
// starting at offset.
func (p *IteratorPool[C]) Borrow(text []rune, offset int, category CategoryFunc[C]) *Iterator[C] {
	o, _ := p.opool.BorrowObject(p.ctx)
	it := o.(*Iterator[C])
	it.Reset(text, offset, category)
	return it
}

// Release clears an iterator and puts it back into the pool.
func (p *IteratorPool[C]) Release(it *Iterator[C]) {
	it.text = nil
	it.category = nil
	it.mark.open = false
	_ = p.opool.ReturnObject(p.ctx, it)
}
