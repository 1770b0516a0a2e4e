package pets

// Pet wraps exactly one animal of type T, taken by ownership transfer.
// T itself is unconstrained; each capability-dependent operation is a
// package-level function constrained on its own — a method on Pet cannot
// demand more of T than the type declaration does, so the gates live in
// CallBack and Provoke instead. The gates are independent: a Pet[Dog]
// reaches both, a Pet[Cat] only Provoke, and a miswired call fails to
// compile rather than at run time.
type Pet[T any] struct {
	animal T
}

// Adopt consumes the handle and wraps its animal. Adopting from an
// already-moved handle fails with ErrMoved.
func Adopt[T any](h *Handle[T]) (Pet[T], error) {
	animal, err := h.Take()
	if err != nil {
		return Pet[T]{}, err
	}
	return Pet[T]{animal: animal}, nil
}

// CallBack is reachable only when the wrapped type is a Recaller.
func CallBack[T Recaller](p Pet[T]) string {
	return p.animal.Recall()
}

// Provoke is reachable only when the wrapped type is a Speaker.
func Provoke[T Speaker](p Pet[T]) string {
	return p.animal.Speak()
}
