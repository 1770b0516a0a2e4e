package ptrrecv

type Closer interface {
	Close() error
}

// Store satisfies Closer only through *Store.
type Store struct {
	open bool
}

func (s *Store) Close() error {
	s.open = false
	return nil
}
