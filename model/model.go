package model

// Field types as reported by the record store schema.
const (
	FieldTypeText         = "singleLineText"
	FieldTypeLongText     = "multilineText"
	FieldTypePhone        = "phoneNumber"
	FieldTypeEmail        = "email"
	FieldTypeSingleSelect = "singleSelect"
	FieldTypeMultiSelect  = "multipleSelects"
)

type Field struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

func (f Field) HasChoices() bool {
	return len(f.Options) > 0
}

// ValueHint names the kind of value the caller is expected to provide.
func (f Field) ValueHint() string {
	switch f.Type {
	case FieldTypePhone:
		return "a phone number"
	case FieldTypeEmail:
		return "an email address"
	case FieldTypeSingleSelect:
		return "one of the listed choices"
	case FieldTypeMultiSelect:
		return "one or more of the listed choices"
	default:
		return "free text"
	}
}

// Schema is the ordered field list of one survey table.
type Schema struct {
	Table  string  `json:"table"`
	Fields []Field `json:"fields"`
}

func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// DialogueState is the survey progress carried between telephony callbacks.
// It only ever travels inside the callback address: RemainingFields is a
// suffix of the schema's declared field order, LastAnswers the normalized
// values collected so far.
type DialogueState struct {
	RemainingFields []string
	LastAnswers     []string
}
