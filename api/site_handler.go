package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mmrivera/portfolio-backend/auth"
	"github.com/mmrivera/portfolio-backend/panel"
)

type siteHandler struct {
	responder   Responder
	logger      zerolog.Logger
	notifier    *auth.Notifier
	startupTime time.Time
}

func newSiteHandler(notifier *auth.Notifier, startupTime time.Time) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		notifier:    notifier,
		startupTime: startupTime,
	}
}

// resolveView maps the client's location fragment to the view to render.
// The frontend calls this on load and on every fragment change.
func (h siteHandler) resolveView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fragment := r.URL.Query().Get("fragment")
		h.responder.WriteJSON(w, map[string]string{
			"view": string(panel.ResolveView(fragment)),
		})
	}
}

// health reports liveness and uptime.
func (h siteHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"status": "ok",
			"uptime": time.Since(h.startupTime).String(),
		})
	}
}

// adminEvents streams auth-state changes to the admin SPA as server-sent
// events, so the panel flips between login and dashboard when the session
// changes elsewhere. The per-connection gate's subscription is released when
// the client disconnects, on every exit path.
func (h siteHandler) adminEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		views := make(chan panel.AdminView, 8)
		gate := panel.NewGate(h.notifier, func(view panel.AdminView) {
			select {
			case views <- view:
			default:
				// Slow consumer; the next event carries the latest state anyway.
			}
		})
		defer gate.Close()

		// The connection came through the auth middleware, so the session is
		// live; flip the gate locally instead of waiting for the next event.
		gate.SetLocal(true)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		writeEvent := func(view panel.AdminView) {
			fmt.Fprintf(w, "event: view\ndata: %s\n\n", view)
			flusher.Flush()
		}
		writeEvent(gate.View())

		for {
			select {
			case <-r.Context().Done():
				return
			case view := <-views:
				writeEvent(view)
			}
		}
	}
}
