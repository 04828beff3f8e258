package panel

import (
	"sync"
	"time"

	"github.com/mmrivera/portfolio-backend/errs"
	"github.com/mmrivera/portfolio-backend/models"
)

// closeDelay is how long the confirmation message stays up before a form or
// flow closes itself.
const closeDelay = 1500 * time.Millisecond

// FormInput is the raw admin form payload. Tags arrive as one comma-separated
// string, the way the operator types them.
type FormInput struct {
	Title       string
	Description string
	Tags        string
	ProjectLink string
	ImageURL    string
}

// ProjectForm creates or edits one project. Pass an existing project for edit
// mode or nil for create mode. On success it refreshes the parent's list and
// closes itself after a short delay; on store failure it stays open with the
// error as its status.
type ProjectForm struct {
	store    ProjectStore
	existing *models.Project
	refresh  func()
	onClose  func()
	delay    time.Duration

	mu     sync.Mutex
	status string
	timer  *time.Timer
	closed bool
}

func NewProjectForm(store ProjectStore, existing *models.Project, refresh, onClose func()) *ProjectForm {
	return &ProjectForm{
		store:    store,
		existing: existing,
		refresh:  refresh,
		onClose:  onClose,
		delay:    closeDelay,
	}
}

// Submit validates and persists the form. Create mode inserts a new project;
// edit mode overwrites the full record at the existing ID — callers are
// expected to have loaded every field into the form beforehand, otherwise the
// overwrite blanks whatever they left out.
func (f *ProjectForm) Submit(in FormInput) error {
	if in.Title == "" {
		return f.fail(errs.NewMissingRequiredFieldError("title"))
	}
	if in.Description == "" {
		return f.fail(errs.NewMissingRequiredFieldError("description"))
	}

	project := &models.Project{
		Title:       in.Title,
		Description: in.Description,
		Tags:        models.ParseTags(in.Tags),
		ProjectLink: in.ProjectLink,
		ImageURL:    in.ImageURL,
	}

	var err error
	if f.existing != nil {
		project.ID = f.existing.ID
		err = f.store.Update(project)
	} else {
		err = f.store.Add(project)
	}
	if err != nil {
		return f.fail(err)
	}

	f.setStatus("Project saved!")
	if f.refresh != nil {
		f.refresh()
	}
	f.scheduleClose()
	return nil
}

// Status returns the current inline status message.
func (f *ProjectForm) Status() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Close cancels any pending auto-close timer and runs the close callback
// exactly once.
func (f *ProjectForm) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	onClose := f.onClose
	f.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

func (f *ProjectForm) fail(err error) error {
	f.setStatus(err.Error())
	return err
}

func (f *ProjectForm) setStatus(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.status = s
	}
}

func (f *ProjectForm) scheduleClose() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.timer != nil {
		return
	}
	f.timer = time.AfterFunc(f.delay, f.Close)
}
