package question

import (
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Record field names used by question files.
const (
	FieldType          = "type"
	FieldQuestion      = "question"
	FieldCorrectAnswer = "correct_answer"
	FieldCaseSensitive = "case_sensitive"
	FieldExplanation   = "explanation"
)

// Record is one decoded entry of a question file.
type Record map[string]any

// Type returns the record's type tag, or "" if absent or not a string.
func (r Record) Type() string {
	t, _ := r[FieldType].(string)
	return t
}

// Build constructs a question from a record. Errors wrap one of
// ErrMissingField, ErrUnsupportedType, ErrInvalidAnswer or
// ErrMalformedRecord; a failing record never yields a partial question.
func Build(rec Record) (*Question, error) {
	typ := rec.Type()
	if typ == "" {
		raw, present := rec[FieldType]
		if !present || raw == nil {
			return nil, &FieldError{Field: FieldType, Err: ErrMissingField}
		}
		return nil, &UnsupportedTypeError{Type: fmt.Sprint(raw)}
	}

	k := Kind(typ)
	schema, known, err := compiledSchema(k)
	if err != nil {
		return nil, fmt.Errorf("record schema: %w", err)
	}
	if !known {
		return nil, &UnsupportedTypeError{Type: typ}
	}

	if err := schema.Validate(map[string]any(rec)); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return nil, classify(verr)
		}
		return nil, &FieldError{Field: FieldType, Reason: err.Error(), Err: ErrMalformedRecord}
	}

	prompt := rec[FieldQuestion].(string)
	switch k {
	case KindTrueFalse:
		explanation, _ := rec[FieldExplanation].(string)
		return NewTrueFalse(prompt, rec[FieldCorrectAnswer].(bool), explanation), nil
	default:
		caseSensitive, _ := rec[FieldCaseSensitive].(bool)
		return NewShortAnswer(prompt, rec[FieldCorrectAnswer].(string), caseSensitive), nil
	}
}

// classify maps a schema validation failure to a FieldError. Missing
// fields take precedence over wrongly typed ones.
func classify(verr *jsonschema.ValidationError) error {
	leaves := leafErrors(verr)

	for _, leaf := range leaves {
		if req, ok := leaf.ErrorKind.(*kind.Required); ok && len(req.Missing) > 0 {
			return &FieldError{Field: req.Missing[0], Err: ErrMissingField}
		}
	}

	printer := message.NewPrinter(language.English)
	for _, leaf := range leaves {
		field := FieldType
		if len(leaf.InstanceLocation) > 0 {
			field = leaf.InstanceLocation[0]
		}
		reason := leaf.ErrorKind.LocalizedString(printer)
		if field == FieldCorrectAnswer {
			return &FieldError{Field: field, Reason: reason, Err: ErrInvalidAnswer}
		}
		return &FieldError{Field: field, Reason: reason, Err: ErrMalformedRecord}
	}

	return &FieldError{Field: FieldType, Reason: verr.Error(), Err: ErrMalformedRecord}
}

// leafErrors flattens a validation error tree to the errors without causes.
func leafErrors(verr *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(verr.Causes) == 0 {
		return []*jsonschema.ValidationError{verr}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range verr.Causes {
		leaves = append(leaves, leafErrors(cause)...)
	}
	return leaves
}
