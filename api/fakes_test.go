package api

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmrivera/portfolio-backend/auth"
	"github.com/mmrivera/portfolio-backend/models"
	"github.com/mmrivera/portfolio-backend/storage"
)

type memProjectStore struct {
	mu       sync.Mutex
	projects map[uuid.UUID]*models.Project
}

func newMemProjectStore() *memProjectStore {
	return &memProjectStore{projects: make(map[uuid.UUID]*models.Project)}
}

func (s *memProjectStore) FindAll() ([]*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		clone := *p
		all = append(all, &clone)
	}
	return all, nil
}

func (s *memProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.projects[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, nil
}

func (s *memProjectStore) Add(project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	project.ID = uuid.New()
	clone := *project
	s.projects[project.ID] = &clone
	return nil
}

func (s *memProjectStore) Update(project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *project
	s.projects[project.ID] = &clone
	return nil
}

func (s *memProjectStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.projects, id)
	return nil
}

type memAssetStore struct {
	mu     sync.Mutex
	docs   map[string]map[string]string
	merges int
}

func newMemAssetStore() *memAssetStore {
	return &memAssetStore{docs: make(map[string]map[string]string)}
}

func (s *memAssetStore) Find(name string) (*models.AssetRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
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

func (s *memAssetStore) Merge(name string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[name]
	if !ok {
		doc = make(map[string]string)
		s.docs[name] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
	s.merges++
	return nil
}

func (s *memAssetStore) PdfLinks() (*models.PdfLinks, error) {
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

type memFileStore struct {
	mu      sync.Mutex
	uploads []string
}

func (s *memFileStore) Upload(ctx context.Context, key string, r io.Reader, size int64, onProgress storage.ProgressFunc) (string, error) {
	s.mu.Lock()
	s.uploads = append(s.uploads, key)
	s.mu.Unlock()

	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	if onProgress != nil {
		onProgress(100)
	}
	return "https://files.example.com/" + key, nil
}

func (s *memFileStore) DownloadURL(ctx context.Context, key string) (string, error) {
	return "https://files.example.com/" + key, nil
}

type memUserStore struct {
	user *models.User
}

func (s *memUserStore) FindByEmail(email string) (*models.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, nil
}

// newTestAuthService returns an auth service with one known admin.
func newTestAuthService(email, password string) *auth.Service {
	hash, err := auth.HashPassword(password)
	if err != nil {
		panic(err)
	}
	store := &memUserStore{user: &models.User{Email: email, PasswordHash: hash}}
	return auth.NewService(store, auth.NewNotifier(), []byte("test-secret"), time.Hour)
}
