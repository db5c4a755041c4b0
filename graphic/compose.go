package graphic

import "fmt"

// Combine merges the kind already in a cell with the kind being drawn over it.
//
// With remapDirectional set, pseudo-kinds are reduced to the plain line first, so
// drawing a line through an edge-hugging glyph produces an ordinary junction. Without
// it the pseudo-kinds keep their edge masks, and most pairings involving them have no
// defined result: Combine then returns an error wrapping ErrInvalidMask.
//
// Any kind combined with itself is unchanged, even a pseudo-kind under remapping.
// Cross absorbs everything else.
func Combine(existing, incoming Kind, remapDirectional bool) (Kind, error) {
	if !existing.Valid() || !incoming.Valid() {
		return 0, fmt.Errorf("combine %v with %v: %w", existing, incoming, ErrInvalidMask)
	}
	if existing == incoming {
		return existing, nil
	}
	if remapDirectional {
		existing, incoming = existing.Canonical(), incoming.Canonical()
	}
	if existing == Cross || incoming == Cross {
		return Cross, nil
	}
	k, err := FromMask(existing.Mask() | incoming.Mask())
	if err != nil {
		return 0, fmt.Errorf("combine %v with %v: %w", existing, incoming, err)
	}
	return k, nil
}

// Compose is Combine with the best-effort fallback applied: a pairing with no defined
// result yields incoming, exactly as passed, so the drawing operation still lands.
func Compose(existing, incoming Kind, remapDirectional bool) Kind {
	k, err := Combine(existing, incoming, remapDirectional)
	if err != nil {
		return incoming
	}
	return k
}
