package app

import (
	"github.com/gverri/call-survey/completion"
	"github.com/gverri/call-survey/config"
	"github.com/gverri/call-survey/store"
)

type App struct {
	store.RecordStore
	completion.Client
	config.Config
}
