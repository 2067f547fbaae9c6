// Package twiml builds the declarative voice instruction documents returned
// to the telephony channel: speak a text, gather digit or speech input with a
// callback address, or redirect to another address.
package twiml

import "encoding/xml"

type Response struct {
	XMLName  xml.Name  `xml:"Response"`
	Say      *Say      `xml:",omitempty"`
	Gather   *Gather   `xml:",omitempty"`
	Redirect *Redirect `xml:",omitempty"`
}

type Say struct {
	XMLName xml.Name `xml:"Say"`
	Text    string   `xml:",chardata"`
}

type Gather struct {
	XMLName   xml.Name `xml:"Gather"`
	Input     string   `xml:"input,attr,omitempty"`
	Action    string   `xml:"action,attr"`
	Method    string   `xml:"method,attr,omitempty"`
	NumDigits int      `xml:"numDigits,attr,omitempty"`
	Timeout   int      `xml:"timeout,attr,omitempty"`
	Say       *Say     `xml:",omitempty"`
}

type Redirect struct {
	XMLName xml.Name `xml:"Redirect"`
	Method  string   `xml:"method,attr,omitempty"`
	URL     string   `xml:",chardata"`
}

// Speak is a terminal document: say the text, then hang up.
func Speak(text string) Response {
	return Response{Say: &Say{Text: text}}
}

// GatherDigits speaks a prompt and collects numDigits keypad digits, then
// POSTs them to action.
func GatherDigits(prompt string, numDigits int, action string) Response {
	return Response{Gather: &Gather{
		Input:     "dtmf",
		Action:    action,
		Method:    "POST",
		NumDigits: numDigits,
		Say:       &Say{Text: prompt},
	}}
}

// GatherSpeech speaks a prompt and collects a spoken answer, then POSTs its
// transcript to action.
func GatherSpeech(prompt string, timeout int, action string) Response {
	return Response{Gather: &Gather{
		Input:   "speech",
		Action:  action,
		Method:  "POST",
		Timeout: timeout,
		Say:     &Say{Text: prompt},
	}}
}

// SpeakThenRedirect says the text, then continues the call at action via POST.
func SpeakThenRedirect(text, action string) Response {
	return Response{
		Say:      &Say{Text: text},
		Redirect: &Redirect{Method: "POST", URL: action},
	}
}

// RedirectPost continues the call at action via POST.
func RedirectPost(action string) Response {
	return Response{Redirect: &Redirect{Method: "POST", URL: action}}
}
