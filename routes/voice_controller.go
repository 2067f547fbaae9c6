package routes

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/gverri/call-survey/app"
	"github.com/gverri/call-survey/dialogue"
	"github.com/gverri/call-survey/httpx"
	"github.com/gverri/call-survey/log"
	"github.com/gverri/call-survey/store"
	"github.com/gverri/call-survey/twiml"
)

const (
	surveyIDDigits       = 4
	speechTimeoutSeconds = 5

	surveyIDPrompt       = "Welcome. Please enter the survey number on your keypad."
	unknownSurveyMessage = "Sorry, no survey with that number exists. Goodbye."
	closingMessage       = "That was the last question. Thank you for taking the survey. Goodbye."
)

// Every callback issued by the field-response handler carries a fresh turn
// token. It is correlation only: a duplicated callback shows up in the logs
// as the same token arriving twice, but is still processed (see DESIGN.md).
const paramTurn = "turn"

// gatherResult is the caller input delivered by the telephony channel.
type gatherResult struct {
	CallSid      string `form:"CallSid"`
	Digits       string `form:"Digits"`
	SpeechResult string `form:"SpeechResult"`
}

// VoiceStart answers the inbound call: ask for the survey id and gather its
// digits into the survey-id handler.
func VoiceStart(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.XML(w, r, twiml.GatherDigits(surveyIDPrompt, surveyIDDigits, "/handle-survey-id"))
	}
}

// HandleSurveyID maps the entered digits onto a survey table, creates the
// empty response record, and redirects into the field-response loop with
// uninitialized dialogue state.
func HandleSurveyID(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeGather(r)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		digits := strings.TrimSpace(in.Digits)
		if digits == "" {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body.digits")
			return
		}

		table := "Survey_" + digits
		recordID, err := app.CreateEmptyRecord(r.Context(), table)
		if errors.Is(err, store.ErrTableNotFound) {
			log.Debugf("survey_id.unknown_table: %s", table)
			render.XML(w, r, twiml.Speak(unknownSurveyMessage))
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "store.create_record", err)
			return
		}

		log.Infof("dialogue started: call=%s table=%s record=%s", in.CallSid, table, recordID)
		render.XML(w, r, twiml.RedirectPost(responsePath(table, recordID, nil)))
	}
}

// HandleResponse runs one turn of the collection loop. All survey progress
// arrives in the callback query parameters and leaves on the next callback
// address; the handler itself keeps nothing between turns.
func HandleResponse(app app.App) http.HandlerFunc {
	resolver := dialogue.Resolver{Store: app.RecordStore}
	interpreter := dialogue.Interpreter{Completions: app.Client}
	prompter := dialogue.Prompter{Completions: app.Client}

	return func(w http.ResponseWriter, r *http.Request) {
		table := chi.URLParam(r, "tableName")
		recordID := chi.URLParam(r, "responseID")

		state, initialized, err := dialogue.DecodeState(r.URL.Query())
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.decode_state")
			return
		}
		if turn := r.URL.Query().Get(paramTurn); turn != "" {
			log.Debugf("dialogue turn: record=%s turn=%s", recordID, turn)
		}

		in, err := decodeGather(r)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		fieldNames, schema, err := resolver.Resolve(r.Context(), table)
		if err != nil {
			if errors.Is(err, store.ErrTableNotFound) {
				log.Debugf("response.unknown_table: %s", table)
				render.XML(w, r, twiml.Speak(unknownSurveyMessage))
				return
			}
			httpx.LogInternalError(w, "store.get_schema", err)
			return
		}

		if !initialized {
			if len(fieldNames) == 0 {
				render.XML(w, r, twiml.Speak(closingMessage))
				return
			}
			state.RemainingFields = fieldNames
		} else if len(state.RemainingFields) > 0 {
			// the head of the remainder is the field the caller just answered
			name := state.RemainingFields[0]
			value, err := interpreter.Interpret(r.Context(), schema, name, in.SpeechResult)
			if err != nil {
				httpx.LogInternalError(w, "completion.interpret", err)
				return
			}

			// best-effort field write: the dialogue advances even when the
			// store update fails
			err = app.UpdateRecord(r.Context(), table, recordID, map[string]any{name: value})
			if err != nil {
				log.Warnf("store.update_record: %s", err)
			}

			state.RemainingFields = state.RemainingFields[1:]
			state.LastAnswers = append(state.LastAnswers, value)
		}

		if len(state.RemainingFields) == 0 {
			render.XML(w, r, twiml.Speak(closingMessage))
			return
		}

		next, ok := schema.Field(state.RemainingFields[0])
		if !ok {
			httpx.LogStatusMsg(w, http.StatusInternalServerError, log.ErrorLevel,
				"dialogue.unknown_field", "field %q is not in the schema of %q", state.RemainingFields[0], table)
			return
		}

		prompt, err := prompter.Generate(r.Context(), schema, next, state.LastAnswers)
		if err != nil {
			httpx.LogInternalError(w, "completion.generate_prompt", err)
			return
		}

		query := dialogue.EncodeState(state)
		query.Set(paramTurn, uuid.NewString())
		render.XML(w, r, twiml.GatherSpeech(prompt, speechTimeoutSeconds, responsePath(table, recordID, query)))
	}
}

func responsePath(table, recordID string, query url.Values) string {
	path := "/handle-response/" + url.PathEscape(table) + "/" + url.PathEscape(recordID)
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

func decodeGather(r *http.Request) (in gatherResult, err error) {
	err = render.DecodeForm(r.Body, &in)
	if err != nil && !errors.Is(err, io.EOF) {
		return
	}
	return in, nil
}
