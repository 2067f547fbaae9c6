package routes

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/gverri/call-survey/app"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]any{"ok": true})
	})

	root.Post("/voice", VoiceStart(app))
	root.Post("/handle-survey-id", HandleSurveyID(app))
	root.Post("/handle-response/{tableName}/{responseID}", HandleResponse(app))

	return root
}
