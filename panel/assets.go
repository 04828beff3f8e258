package panel

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmrivera/portfolio-backend/models"
	"github.com/mmrivera/portfolio-backend/storage"
)

// Kind identifies one of the two managed PDF assets.
type Kind string

const (
	KindLicenses    Kind = "licenses"
	KindInternships Kind = "internships"
)

// Kinds lists the managed asset kinds in display order.
func Kinds() []Kind {
	return []Kind{KindLicenses, KindInternships}
}

// Mode selects how a kind's URL is produced on submit.
type Mode string

const (
	// ModeLink takes the pasted text field value as the URL directly.
	ModeLink Mode = "link"
	// ModeUpload uploads the selected file and uses its download URL.
	ModeUpload Mode = "upload"
)

var (
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrNoFileSelected   = errors.New("no file selected for upload")
	ErrUnknownKind      = errors.New("unknown asset kind")
)

// FileInput is a file the operator picked for upload.
type FileInput struct {
	Name   string
	Size   int64
	Reader io.Reader
}

type kindState struct {
	mode     Mode
	linkURL  string
	file     *FileInput
	progress int
}

// AssetFlow manages the two PDF asset links. Each kind independently sits in
// LINK or UPLOAD mode; nothing touches the network until Submit, which
// resolves both kinds in parallel and records the result as one merged write
// to the combined asset document. Either both URLs commit or neither does.
type AssetFlow struct {
	assets  AssetStore
	files   storage.FileStore
	refresh func()
	onClose func()
	now     func() time.Time
	delay   time.Duration

	mu         sync.Mutex
	kinds      map[Kind]*kindState
	submitting bool
	status     string
	timer      *time.Timer
	closed     bool
}

func NewAssetFlow(assets AssetStore, files storage.FileStore, refresh, onClose func()) *AssetFlow {
	kinds := make(map[Kind]*kindState, 2)
	for _, kind := range Kinds() {
		kinds[kind] = &kindState{mode: ModeLink}
	}
	return &AssetFlow{
		assets:  assets,
		files:   files,
		refresh: refresh,
		onClose: onClose,
		now:     time.Now,
		delay:   closeDelay,
		kinds:   kinds,
	}
}

// Load seeds the link text fields from the currently stored URLs, so a
// submit with nothing changed writes the prior values back.
func (f *AssetFlow) Load() error {
	links, err := f.assets.PdfLinks()
	if err != nil {
		f.setStatus(err.Error())
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kinds[KindLicenses].linkURL = links.LicensesPdfURL
	f.kinds[KindInternships].linkURL = links.InternshipsPdfURL
	return nil
}

// SetMode switches a kind between LINK and UPLOAD.
func (f *AssetFlow) SetMode(kind Kind, mode Mode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	state, ok := f.kinds[kind]
	if !ok {
		return ErrUnknownKind
	}
	state.mode = mode
	return nil
}

// SetLink replaces a kind's candidate URL text.
func (f *AssetFlow) SetLink(kind Kind, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	state, ok := f.kinds[kind]
	if !ok {
		return ErrUnknownKind
	}
	state.linkURL = url
	return nil
}

// SetFile records the file the operator picked for a kind. The upload only
// starts on Submit.
func (f *AssetFlow) SetFile(kind Kind, file FileInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	state, ok := f.kinds[kind]
	if !ok {
		return ErrUnknownKind
	}
	state.file = &file
	return nil
}

// Progress returns a kind's upload progress percentage.
func (f *AssetFlow) Progress(kind Kind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if state, ok := f.kinds[kind]; ok {
		return state.progress
	}
	return 0
}

// Status returns the current inline status message.
func (f *AssetFlow) Status() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit resolves both kinds to final URLs — immediately in LINK mode, via an
// upload in UPLOAD mode — and then writes both URLs in one merged write to
// the combined document. The two resolutions run in parallel and may finish
// in either order; any failure aborts the whole submit before the write, so
// no partial state is ever committed. A submit while one is pending is
// rejected.
func (f *AssetFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return errors.New("flow is closed")
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	urls := make(map[Kind]string, 2)
	var urlsMu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, kind := range Kinds() {
		g.Go(func() error {
			url, err := f.resolve(ctx, kind)
			if err != nil {
				return err
			}
			urlsMu.Lock()
			urls[kind] = url
			urlsMu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		f.setStatus(err.Error())
		return err
	}

	err := f.assets.Merge(models.AssetDocPdfs, map[string]string{
		models.FieldLicensesPdfURL:    urls[KindLicenses],
		models.FieldInternshipsPdfURL: urls[KindInternships],
	})
	if err != nil {
		f.setStatus(err.Error())
		return err
	}

	f.setStatus("Assets updated!")
	if f.refresh != nil {
		f.refresh()
	}
	f.scheduleClose()
	return nil
}

// resolve produces the final URL for one kind.
func (f *AssetFlow) resolve(ctx context.Context, kind Kind) (string, error) {
	f.mu.Lock()
	state := f.kinds[kind]
	mode, linkURL, file := state.mode, state.linkURL, state.file
	f.mu.Unlock()

	if mode == ModeLink {
		return linkURL, nil
	}
	if file == nil {
		return "", ErrNoFileSelected
	}

	key := storage.ObjectKey(string(kind), file.Name, f.now())
	return f.files.Upload(ctx, key, file.Reader, file.Size, func(percent int) {
		f.setProgress(kind, percent)
	})
}

func (f *AssetFlow) setProgress(kind Kind, percent int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// In-flight uploads keep reporting after a teardown; drop those updates.
	if f.closed {
		return
	}
	if state, ok := f.kinds[kind]; ok && percent > state.progress {
		state.progress = percent
	}
}

func (f *AssetFlow) setStatus(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.status = s
	}
}

func (f *AssetFlow) scheduleClose() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.timer != nil {
		return
	}
	f.timer = time.AfterFunc(f.delay, f.Close)
}

// Close cancels any pending auto-close timer and runs the close callback
// exactly once.
func (f *AssetFlow) Close() {
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
