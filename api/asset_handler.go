package api

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mmrivera/portfolio-backend/errs"
	"github.com/mmrivera/portfolio-backend/panel"
	"github.com/mmrivera/portfolio-backend/storage"
)

// maxUploadBytes caps a single asset submit; two PDFs fit comfortably.
const maxUploadBytes = 64 << 20

type assetHandler struct {
	responder Responder
	logger    zerolog.Logger
	assets    panel.AssetStore
	files     storage.FileStore
}

func newAssetHandler(assets panel.AssetStore, files storage.FileStore) assetHandler {
	logger := log.With().Str("handlerName", "assetHandler").Logger()

	return assetHandler{
		responder: NewResponder(logger),
		logger:    logger,
		assets:    assets,
		files:     files,
	}
}

// getAssets returns the resolved public PDF links.
func (h assetHandler) getAssets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := h.assets.PdfLinks()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "asset links", err))
			return
		}
		h.responder.WriteJSON(w, links)
	}
}

// updateAssets runs one asset-flow submit. The multipart form carries, per
// kind, a `{kind}_mode` field of "link" or "upload" plus either a
// `{kind}_url` text field or a `{kind}_file` part. Both kinds resolve before
// a single merged write commits both URLs together; any failure commits
// nothing.
func (h assetHandler) updateAssets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		flow := panel.NewAssetFlow(h.assets, h.files, nil, nil)
		defer flow.Close()

		// Seed the link fields with the stored URLs so an untouched LINK-mode
		// kind writes its prior value back.
		if err := flow.Load(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "asset links", err))
			return
		}

		for _, kind := range panel.Kinds() {
			if err := h.applyKind(r, flow, kind); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		if err := flow.Submit(r.Context()); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		links, err := h.assets.PdfLinks()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "asset links", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"message": flow.Status(),
			"links":   links,
		})
	}
}

// applyKind transfers one kind's form fields onto the flow.
func (h assetHandler) applyKind(r *http.Request, flow *panel.AssetFlow, kind panel.Kind) error {
	switch mode := r.FormValue(fmt.Sprintf("%s_mode", kind)); mode {
	case "", string(panel.ModeLink):
		if url := r.FormValue(fmt.Sprintf("%s_url", kind)); url != "" {
			if err := flow.SetLink(kind, url); err != nil {
				return errs.NewBadRequestError(err.Error())
			}
		}
		return nil

	case string(panel.ModeUpload):
		file, header, err := r.FormFile(fmt.Sprintf("%s_file", kind))
		if err != nil {
			return errs.NewBadRequestError(fmt.Sprintf("missing %s file for upload mode", kind))
		}
		if err := flow.SetMode(kind, panel.ModeUpload); err != nil {
			return errs.NewBadRequestError(err.Error())
		}
		if err := flow.SetFile(kind, panel.FileInput{
			Name:   header.Filename,
			Size:   header.Size,
			Reader: file,
		}); err != nil {
			return errs.NewBadRequestError(err.Error())
		}
		return nil

	default:
		return errs.NewBadRequestError(fmt.Sprintf("invalid mode %q for %s", mode, kind))
	}
}
