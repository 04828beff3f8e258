package panel

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/mmrivera/portfolio-backend/models"
	"github.com/mmrivera/portfolio-backend/storage"
)

// fakeProjectStore is an in-memory ProjectStore with switchable failure.
type fakeProjectStore struct {
	mu       sync.Mutex
	projects map[uuid.UUID]*models.Project
	failWith error
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[uuid.UUID]*models.Project)}
}

func (s *fakeProjectStore) FindAll() ([]*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	all := make([]*models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		clone := *p
		all = append(all, &clone)
	}
	return all, nil
}

func (s *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	p, ok := s.projects[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (s *fakeProjectStore) Add(project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if project.ID != uuid.Nil {
		return errors.New("id must be assigned by the store")
	}
	project.ID = uuid.New()
	clone := *project
	s.projects[project.ID] = &clone
	return nil
}

func (s *fakeProjectStore) Update(project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	clone := *project
	s.projects[project.ID] = &clone
	return nil
}

func (s *fakeProjectStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	delete(s.projects, id)
	return nil
}

// fakeAssetStore records every merge call for assertion.
type fakeAssetStore struct {
	mu      sync.Mutex
	docs    map[string]map[string]string
	merges  []map[string]string
	failing bool
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{docs: make(map[string]map[string]string)}
}

func (s *fakeAssetStore) Find(name string) (*models.AssetRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return nil, errors.New("store unavailable")
	}
	fields, ok := s.docs[name]
	if !ok {
		return nil, nil
	}
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &models.AssetRecord{Name: name, Fields: copied}, nil
}

func (s *fakeAssetStore) Merge(name string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return errors.New("store unavailable")
	}
	doc, ok := s.docs[name]
	if !ok {
		doc = make(map[string]string)
		s.docs[name] = doc
	}
	recorded := make(map[string]string, len(fields))
	for k, v := range fields {
		doc[k] = v
		recorded[k] = v
	}
	s.merges = append(s.merges, recorded)
	return nil
}

func (s *fakeAssetStore) PdfLinks() (*models.PdfLinks, error) {
	combined, err := s.Find(models.AssetDocPdfs)
	if err != nil {
		return nil, err
	}
	links := &models.PdfLinks{}
	if combined != nil {
		links.LicensesPdfURL = combined.Fields[models.FieldLicensesPdfURL]
		links.InternshipsPdfURL = combined.Fields[models.FieldInternshipsPdfURL]
	}
	return links, nil
}

func (s *fakeAssetStore) mergeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.merges)
}

// fakeFileStore consumes the upload body in chunks so progress is reported
// incrementally, and records every call.
type fakeFileStore struct {
	mu       sync.Mutex
	uploads  []string
	failWith error
	// blockUntil, when non-nil, stalls Upload until closed.
	blockUntil chan struct{}
}

func (s *fakeFileStore) Upload(ctx context.Context, key string, r io.Reader, size int64, onProgress storage.ProgressFunc) (string, error) {
	s.mu.Lock()
	s.uploads = append(s.uploads, key)
	fail := s.failWith
	block := s.blockUntil
	s.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if fail != nil {
		return "", fail
	}

	var read int64
	buf := make([]byte, 4)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			read += int64(n)
			if onProgress != nil && size > 0 {
				pct := int(read * 100 / size)
				if pct > 100 {
					pct = 100
				}
				onProgress(pct)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return "https://files.example.com/" + key, nil
}

func (s *fakeFileStore) DownloadURL(ctx context.Context, key string) (string, error) {
	return "https://files.example.com/" + key, nil
}

func (s *fakeFileStore) uploadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.uploads)
}
