package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/gverri/call-survey/completion"
	"github.com/gverri/call-survey/model"
)

// Prompter generates the next spoken question of the survey from the field
// to ask about and the answers collected so far.
type Prompter struct {
	Completions completion.Client
}

func (p Prompter) Generate(ctx context.Context, schema model.Schema, field model.Field, priorAnswers []string) (string, error) {
	candidates, err := p.Completions.Complete(ctx, generatePrompt(schema, field, priorAnswers))
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", completion.ErrNoCompletion
	}
	return strings.TrimSpace(candidates[0]), nil
}

func generatePrompt(schema model.Schema, field model.Field, priorAnswers []string) string {
	b := strings.Builder{}
	b.WriteString("You are conducting a phone survey, asking one question per turn.\n")
	fmt.Fprintf(&b, "The survey schema is:\n%s\n", schemaJSON(schema))
	fmt.Fprintf(&b, "Ask the caller for the field %q. The expected answer is %s; say so.\n", field.Name, field.ValueHint())
	if field.HasChoices() {
		fmt.Fprintf(&b, "Read out the available choices in this exact order: %s. ", quoteAll(field.Options))
		b.WriteString("Ask the caller to answer with the label of a choice, not its position in the list.\n")
	}
	if len(priorAnswers) > 0 {
		fmt.Fprintf(&b, "The answers collected so far, in order, are: %s. ", quoteAll(priorAnswers))
		fmt.Fprintf(&b, "Briefly react to the most recent answer, %q, before asking the new question.\n", priorAnswers[len(priorAnswers)-1])
	}
	b.WriteString("Do not introduce yourself. Reply with exactly the sentence to speak to the caller, and nothing else.")
	return b.String()
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
