package validation

// Validator checks a struct and returns one message per invalid field, keyed by
// the field's JSON name. A nil map means the struct is valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
