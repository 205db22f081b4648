// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A kindSet is a bit set of node kinds.
type kindSet uint16

const allKinds kindSet = 1<<numKinds - 1

func setOf(ks ...Kind) kindSet {
	var s kindSet
	for _, k := range ks {
		s |= 1 << k
	}
	return s
}

func (s kindSet) has(k Kind) bool {
	return s&(1<<k) != 0
}

// A Restriction limits which node variants may be parsed in a context.
//
// Most restrictions are plain sets of kinds and are checked with a
// single bit test. A predicate is reserved for the few rules that
// depend on more than the kind, such as a container that may not
// hold another container of its own variant.
//
// The zero Restriction allows everything.
type Restriction struct {
	denied kindSet
	pred   func(Variant) bool // nil means no further limit
}

// Unrestricted returns a restriction that allows every variant.
func Unrestricted() Restriction {
	return Restriction{}
}

// DisallowAll returns a restriction that allows no variant.
func DisallowAll() Restriction {
	return Restriction{denied: allKinds}
}

// Whitelist returns a restriction allowing only the given kinds.
func Whitelist(ks ...Kind) Restriction {
	return Restriction{denied: allKinds &^ setOf(ks...)}
}

// Blacklist returns a restriction allowing every kind except the given ones.
func Blacklist(ks ...Kind) Restriction {
	return Restriction{denied: setOf(ks...)}
}

// Predicate returns a restriction allowing the variants for which f returns true.
func Predicate(f func(Variant) bool) Restriction {
	return Restriction{pred: f}
}

// Inline returns a restriction allowing only inline kinds.
func Inline() Restriction {
	return Whitelist(KindText, KindVerbatimText, KindCodeSpan, KindEmphasis)
}

// Allows reports whether v may be parsed under r.
func (r Restriction) Allows(v Variant) bool {
	if r.denied.has(v.Kind) {
		return false
	}
	return r.pred == nil || r.pred(v)
}

// mayAllow reports whether some variant of kind k could be allowed by r.
// The driver uses it to skip parsers that cannot win.
func (r Restriction) mayAllow(k Kind) bool {
	return !r.denied.has(k)
}

// Intersect returns a restriction allowing what both r and o allow.
func (r Restriction) Intersect(o Restriction) Restriction {
	x := Restriction{denied: r.denied | o.denied}
	switch {
	case r.pred == nil:
		x.pred = o.pred
	case o.pred == nil:
		x.pred = r.pred
	default:
		rp, op := r.pred, o.pred
		x.pred = func(v Variant) bool { return rp(v) && op(v) }
	}
	return x
}

// Union returns a restriction allowing what either r or o allows.
func (r Restriction) Union(o Restriction) Restriction {
	if r.pred == nil && o.pred == nil {
		return Restriction{denied: r.denied & o.denied}
	}
	return Restriction{
		denied: r.denied & o.denied,
		pred:   func(v Variant) bool { return r.Allows(v) || o.Allows(v) },
	}
}

// notContainer returns a restriction forbidding containers of variant c.
func notContainer(c ContainerVariant) Restriction {
	return Predicate(func(v Variant) bool {
		return v.Kind != KindContainer || v.Container != c
	})
}
