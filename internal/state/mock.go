package state

// Mock is an in-memory test double for Manager.
type Mock struct {
	Records []Record
	Err     error // returned by RecordRefresh when set
	Closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) RecordRefresh(r Record) error {
	if m.Err != nil {
		return m.Err
	}
	m.Records = append(m.Records, r)
	return nil
}

func (m *Mock) LastRefresh(edge string) (*Record, error) {
	for i := len(m.Records) - 1; i >= 0; i-- {
		if m.Records[i].Edge == edge {
			r := m.Records[i]
			return &r, nil
		}
	}
	return nil, nil //nolint:nilnil // mirrors Manager
}

func (m *Mock) Close() error {
	m.Closed = true
	return nil
}
