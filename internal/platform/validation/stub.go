package validation

// StubValidator is a Validator for tests. It records every value it is asked
// to check; a nil ValidateStructFunc accepts everything.
type StubValidator struct {
	ValidateStructFunc func(any) map[string]string
	Checked            []any
}

var _ Validator = (*StubValidator)(nil)

func (s *StubValidator) ValidateStruct(v any) map[string]string {
	s.Checked = append(s.Checked, v)
	if s.ValidateStructFunc != nil {
		return s.ValidateStructFunc(v)
	}
	return nil
}
