package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mmrivera/portfolio-backend/errs"
	"github.com/mmrivera/portfolio-backend/models"
	"github.com/mmrivera/portfolio-backend/panel"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  panel.ProjectStore
}

func newProjectHandler(projects panel.ProjectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// projectFormRequest is the admin form payload. Tags arrive as the raw
// comma-separated string the operator typed.
type projectFormRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	ProjectLink string `json:"projectLink"`
	ImageURL    string `json:"imageUrl"`
}

func (r projectFormRequest) toFormInput() panel.FormInput {
	return panel.FormInput{
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		ProjectLink: r.ProjectLink,
		ImageURL:    r.ImageURL,
	}
}

// ProjectCollection is the list response shape.
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// getAllProjects retrieves all projects
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project from the admin form payload.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectFormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		projects, form := h.newForm(nil)
		defer form.Close()

		if err := form.Submit(req.toFormInput()); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"status":   "success",
			"message":  form.Status(),
			"projects": *projects,
		})
	}
}

// updateProject overwrites the full project record at the given ID with the
// form payload. The admin form loads every prior field before editing, so
// untouched fields round-trip their loaded values.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var req projectFormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		projects, form := h.newForm(existing)
		defer form.Close()

		if err := form.Submit(req.toFormInput()); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":   "success",
			"message":  form.Status(),
			"projects": *projects,
		})
	}
}

// deleteProject deletes a project by ID. Deletion is permanent, so the
// request must carry confirm=true; the admin UI asks the operator first.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		if r.URL.Query().Get("confirm") != "true" {
			h.responder.WriteError(w, errs.NewBadRequestError("deletion requires confirm=true"))
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// newForm builds a project form whose refresh callback re-fetches the list,
// the same read-through refresh the dashboard performs after every mutation.
// The returned pointer holds the refreshed list once Submit succeeds.
func (h projectHandler) newForm(existing *models.Project) (*[]*models.Project, *panel.ProjectForm) {
	refreshed := []*models.Project{}
	form := panel.NewProjectForm(h.projects, existing, func() {
		if list, err := h.projects.FindAll(); err == nil && list != nil {
			refreshed = list
		}
	}, nil)
	return &refreshed, form
}
