package repository

// CounterRepository persists the last generated document number per kind
// (slip, memo, bill). Get returns "" with nil error when no number has been
// generated yet. Satisfies numbering.Store.
type CounterRepository interface {
	GetLastNumber(kind string) (string, error)
	SetLastNumber(kind, number string) error
}
