package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	RecordRefresh(r Record) error
	LastRefresh(edge string) (*Record, error)
	Close() error
}

// Verify implementations at compile time.
var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*Mock)(nil)
)
