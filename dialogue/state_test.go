package dialogue

import (
	"net/url"
	"testing"

	"github.com/gverri/call-survey/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	cases := map[string]model.DialogueState{
		"plain": {
			RemainingFields: []string{"name", "email"},
			LastAnswers:     []string{},
		},
		"with answers": {
			RemainingFields: []string{"email"},
			LastAnswers:     []string{"Alice"},
		},
		"empty sequences": {
			RemainingFields: []string{},
			LastAnswers:     []string{},
		},
		"reserved characters": {
			RemainingFields: []string{"a&b", "c=d", "e?f#g"},
			LastAnswers:     []string{"x&y=z", "100% sure", "semi;colon"},
		},
		"unicode": {
			RemainingFields: []string{"città", "日本語"},
			LastAnswers:     []string{"naïve ✓", "Grüße"},
		},
		"whitespace": {
			RemainingFields: []string{"two words"},
			LastAnswers:     []string{"line\nbreak", " padded "},
		},
	}

	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			got, initialized, err := DecodeState(EncodeState(want))
			require.NoError(t, err)
			assert.True(t, initialized)
			assert.Equal(t, want, got)
		})
	}
}

func TestStateRoundTripThroughURL(t *testing.T) {
	// same as above, but the query string actually travels through a URL the
	// way the telephony channel would echo it back
	want := model.DialogueState{
		RemainingFields: []string{"a&b", "ünïcode"},
		LastAnswers:     []string{"x=y&z"},
	}

	u, err := url.Parse("/handle-response/Survey_4242/17?" + EncodeState(want).Encode())
	require.NoError(t, err)

	got, initialized, err := DecodeState(u.Query())
	require.NoError(t, err)
	assert.True(t, initialized)
	assert.Equal(t, want, got)
}

func TestDecodeStateUninitialized(t *testing.T) {
	st, initialized, err := DecodeState(url.Values{})
	require.NoError(t, err)
	assert.False(t, initialized)
	assert.Empty(t, st.RemainingFields)
	assert.Empty(t, st.LastAnswers)

	// an empty remainder is initialized, not the uninitialized sentinel
	_, initialized, err = DecodeState(EncodeState(model.DialogueState{
		RemainingFields: []string{},
		LastAnswers:     []string{},
	}))
	require.NoError(t, err)
	assert.True(t, initialized)
}

func TestDecodeStateMalformed(t *testing.T) {
	query := url.Values{}
	query.Set("remainingFields", "not json")
	_, _, err := DecodeState(query)
	assert.Error(t, err)

	query = url.Values{}
	query.Set("remainingFields", `["ok"]`)
	query.Set("lastAnswers", `{"wrong": "shape"}`)
	_, _, err = DecodeState(query)
	assert.Error(t, err)
}
