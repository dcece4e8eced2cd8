package seq

import "iter"

// Values exposes a sequence as a range-able Go iterator.  Each range over the
// result starts an independent traversal.
func Values[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.Iterate(); i.HasNext(); {
			if !yield(i.Next()) {
				return
			}
		}
	}
}

// FromSeq exposes a Go iterator as a sequence.  Repeatability of Iterate is
// inherited from the given iterator: if it can be ranged over multiple times,
// so can the resulting sequence.
func FromSeq[T any](s iter.Seq[T]) Sequence[T] {
	return &goSequence[T]{s}
}

type goSequence[T any] struct {
	seq iter.Seq[T]
}

// Iterate begins a fresh traversal of this sequence.
//
//nolint:revive
func (p *goSequence[T]) Iterate() Enumerator[T] {
	next, stop := iter.Pull(p.seq)
	return &goEnumerator[T]{next: next, stop: stop}
}

// goEnumerator adapts a pull-style Go iterator to the enumerator contract.
// The underlying iterator is stopped as soon as exhaustion is observed.
type goEnumerator[T any] struct {
	next  func() (T, bool)
	stop  func()
	item  T
	ready bool
	done  bool
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *goEnumerator[T]) HasNext() bool {
	if p.done {
		return false
	}

	if p.ready {
		return true
	}
	//
	item, ok := p.next()
	//
	if !ok {
		p.done = true
		p.stop()

		return false
	}
	//
	p.item = item
	p.ready = true

	return true
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *goEnumerator[T]) Next() T {
	if !p.HasNext() {
		panic("enumerator exhausted")
	}
	//
	p.ready = false

	return p.item
}
