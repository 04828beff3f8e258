package panel

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmrivera/portfolio-backend/models"
)

func TestProjectFormCreate(t *testing.T) {
	t.Parallel()

	store := newFakeProjectStore()
	refreshed := false
	form := NewProjectForm(store, nil, func() { refreshed = true }, nil)

	err := form.Submit(FormInput{
		Title:       "Chess engine",
		Description: "A UCI chess engine",
		Tags:        "go, chess ,, search",
		ProjectLink: "https://example.com/chess",
	})
	require.NoError(t, err)
	assert.True(t, refreshed)
	assert.NotEmpty(t, form.Status())

	all, err := store.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)

	created := all[0]
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Chess engine", created.Title)
	assert.Equal(t, "A UCI chess engine", created.Description)
	assert.Equal(t, []string{"go", "chess", "search"}, created.Tags)
	assert.Equal(t, "https://example.com/chess", created.ProjectLink)

	form.Close()
}

func TestProjectFormCreateEmptyTags(t *testing.T) {
	t.Parallel()

	store := newFakeProjectStore()
	form := NewProjectForm(store, nil, nil, nil)
	defer form.Close()

	require.NoError(t, form.Submit(FormInput{Title: "t", Description: "d"}))

	all, err := store.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	// Empty tag input stores an empty list, never nil/absent.
	assert.NotNil(t, all[0].Tags)
	assert.Empty(t, all[0].Tags)
}

func TestProjectFormRequiredFields(t *testing.T) {
	t.Parallel()

	store := newFakeProjectStore()
	form := NewProjectForm(store, nil, nil, nil)
	defer form.Close()

	assert.Error(t, form.Submit(FormInput{Description: "d"}))
	assert.Error(t, form.Submit(FormInput{Title: "t"}))

	all, _ := store.FindAll()
	assert.Empty(t, all)
}

func TestProjectFormEditFullOverwritePreservesLoadedValues(t *testing.T) {
	t.Parallel()

	store := newFakeProjectStore()
	seed := &models.Project{
		Title:       "Old title",
		Description: "Old description",
		Tags:        []string{"a", "b"},
		ProjectLink: "https://example.com/old",
		ImageURL:    "https://img.example.com/old.png",
	}
	require.NoError(t, store.Add(seed))

	// The edit form loads every prior field; the operator only touches the
	// title. Submitting the loaded values back must not blank anything.
	loaded, err := store.FindByID(seed.ID)
	require.NoError(t, err)

	form := NewProjectForm(store, loaded, nil, nil)
	defer form.Close()

	require.NoError(t, form.Submit(FormInput{
		Title:       "New title",
		Description: loaded.Description,
		Tags:        "a, b",
		ProjectLink: loaded.ProjectLink,
		ImageURL:    loaded.ImageURL,
	}))

	updated, err := store.FindByID(seed.ID)
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Old description", updated.Description)
	assert.Equal(t, []string{"a", "b"}, updated.Tags)
	assert.Equal(t, "https://example.com/old", updated.ProjectLink)
	assert.Equal(t, "https://img.example.com/old.png", updated.ImageURL)
}

func TestProjectFormStoreFailureStaysOpen(t *testing.T) {
	t.Parallel()

	store := newFakeProjectStore()
	store.failWith = errors.New("permission denied")

	closed := false
	form := NewProjectForm(store, nil, nil, func() { closed = true })

	err := form.Submit(FormInput{Title: "t", Description: "d"})
	require.Error(t, err)
	assert.Contains(t, form.Status(), "permission denied")

	// No auto-close was scheduled; the form stays open and editable.
	time.Sleep(20 * time.Millisecond)
	assert.False(t, closed)

	store.failWith = nil
	form.delay = time.Millisecond
	require.NoError(t, form.Submit(FormInput{Title: "t", Description: "d"}))
}

func TestProjectFormAutoCloseAndCancel(t *testing.T) {
	t.Parallel()

	store := newFakeProjectStore()

	closes := 0
	form := NewProjectForm(store, nil, nil, func() { closes++ })
	form.delay = 5 * time.Millisecond

	require.NoError(t, form.Submit(FormInput{Title: "t", Description: "d"}))

	assert.Eventually(t, func() bool { return closes == 1 }, time.Second, time.Millisecond)

	// Closing again, or the timer firing late, must not close twice.
	form.Close()
	assert.Equal(t, 1, closes)
}

func TestProjectFormCloseCancelsPendingTimer(t *testing.T) {
	t.Parallel()

	store := newFakeProjectStore()

	closes := 0
	form := NewProjectForm(store, nil, nil, func() { closes++ })
	form.delay = 10 * time.Millisecond

	require.NoError(t, form.Submit(FormInput{Title: "t", Description: "d"}))

	// Unmount before the delay elapses: the timer must not fire afterwards.
	form.Close()
	assert.Equal(t, 1, closes)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, closes)
}
