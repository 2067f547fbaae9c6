package twiml

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, doc Response) string {
	t.Helper()
	buf, err := xml.Marshal(doc)
	require.NoError(t, err)
	return string(buf)
}

func TestSpeak(t *testing.T) {
	out := marshal(t, Speak("Goodbye."))
	assert.Equal(t, "<Response><Say>Goodbye.</Say></Response>", out)
}

func TestGatherDigits(t *testing.T) {
	out := marshal(t, GatherDigits("Enter the survey number.", 4, "/handle-survey-id"))
	assert.Contains(t, out, `input="dtmf"`)
	assert.Contains(t, out, `numDigits="4"`)
	assert.Contains(t, out, `action="/handle-survey-id"`)
	assert.Contains(t, out, `method="POST"`)
	assert.Contains(t, out, "<Say>Enter the survey number.</Say>")
}

func TestGatherSpeech(t *testing.T) {
	out := marshal(t, GatherSpeech("What is your name?", 5, "/handle-response/Survey_1/rec1?remainingFields=%5B%22name%22%5D"))
	assert.Contains(t, out, `input="speech"`)
	assert.Contains(t, out, `timeout="5"`)
	assert.NotContains(t, out, "numDigits")
	assert.Contains(t, out, "<Say>What is your name?</Say>")

	// attribute values keep their query string intact after XML escaping
	var parsed Response
	require.NoError(t, xml.Unmarshal([]byte(out), &parsed))
	require.NotNil(t, parsed.Gather)
	assert.Equal(t, "/handle-response/Survey_1/rec1?remainingFields=%5B%22name%22%5D", parsed.Gather.Action)
}

func TestSpeakThenRedirect(t *testing.T) {
	out := marshal(t, SpeakThenRedirect("One moment.", "/handle-response/Survey_1/rec1"))
	assert.Contains(t, out, "<Say>One moment.</Say>")
	assert.Contains(t, out, `<Redirect method="POST">/handle-response/Survey_1/rec1</Redirect>`)
	// the say comes before the redirect
	assert.Less(t, strings.Index(out, "<Say>"), strings.Index(out, "<Redirect"))
}

func TestRedirectPost(t *testing.T) {
	out := marshal(t, RedirectPost("/next"))
	assert.Equal(t, `<Response><Redirect method="POST">/next</Redirect></Response>`, out)
}
