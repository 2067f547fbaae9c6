package dialogue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gverri/call-survey/completion"
	"github.com/gverri/call-survey/model"
)

// Interpreter maps a raw caller utterance onto the normalized value of one
// survey field, using the completion service.
type Interpreter struct {
	Completions completion.Client
}

func (i Interpreter) Interpret(ctx context.Context, schema model.Schema, fieldName, utterance string) (string, error) {
	candidates, err := i.Completions.Complete(ctx, interpretPrompt(schema, fieldName, utterance))
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", completion.ErrNoCompletion
	}
	return strings.TrimSpace(candidates[0]), nil
}

func interpretPrompt(schema model.Schema, fieldName, utterance string) string {
	b := strings.Builder{}
	b.WriteString("You are filling in one answer of a phone survey record.\n")
	fmt.Fprintf(&b, "The survey schema is:\n%s\n", schemaJSON(schema))
	fmt.Fprintf(&b, "The caller was asked for the field %q and said:\n%q\n", fieldName, utterance)
	b.WriteString("Reply with the normalized value to store for that field, and nothing else. ")
	b.WriteString("Convert spoken constructs to their written form, e.g. \"at\" and \"dot\" in email addresses, or spelled-out digits in phone numbers. ")
	b.WriteString("For choice fields reply with the matching choice label exactly as it appears in the schema.")
	return b.String()
}

func schemaJSON(schema model.Schema) string {
	buf, _ := json.MarshalIndent(schema.Fields, "", "  ")
	return string(buf)
}
