// Package dialogue holds the call-flow core: the session state codec that
// round-trips survey progress through callback addresses, the schema
// resolver, and the two completion-backed steps (answer interpretation and
// prompt generation).
package dialogue

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/gverri/call-survey/model"
)

// Query parameter names carried on every field-response callback. The server
// keeps no session state of its own; these parameters are the whole of it.
const (
	paramRemainingFields = "remainingFields"
	paramLastAnswers     = "lastAnswers"
)

// EncodeState serializes the dialogue state into callback query parameters.
func EncodeState(st model.DialogueState) url.Values {
	query := url.Values{}
	query.Set(paramRemainingFields, marshalStrings(st.RemainingFields))
	query.Set(paramLastAnswers, marshalStrings(st.LastAnswers))
	return query
}

// DecodeState reads the dialogue state back out of callback query
// parameters. An absent remainingFields parameter means the dialogue has not
// been initialized yet, which is distinct from an empty remainder.
func DecodeState(query url.Values) (st model.DialogueState, initialized bool, err error) {
	if !query.Has(paramRemainingFields) {
		return
	}
	initialized = true

	st.RemainingFields, err = unmarshalStrings(query.Get(paramRemainingFields))
	if err != nil {
		err = fmt.Errorf("decode %s: %w", paramRemainingFields, err)
		return
	}
	st.LastAnswers, err = unmarshalStrings(query.Get(paramLastAnswers))
	if err != nil {
		err = fmt.Errorf("decode %s: %w", paramLastAnswers, err)
	}
	return
}

func marshalStrings(values []string) string {
	if values == nil {
		values = []string{}
	}
	buf, _ := json.Marshal(values)
	return string(buf)
}

func unmarshalStrings(raw string) (values []string, err error) {
	if raw == "" {
		return []string{}, nil
	}
	err = json.Unmarshal([]byte(raw), &values)
	return
}
