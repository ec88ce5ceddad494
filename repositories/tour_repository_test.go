package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"tourgid/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tourgid.db")), &gorm.Config{})
	if err != nil {
		t.Fatal("failed to open test database:", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatal("failed to migrate test database:", err)
	}

	return db
}

func seedTour(t *testing.T, db *gorm.DB, name string, ownerID uint, moderatedBy *uint, archived bool) *models.Tour {
	t.Helper()

	tour := models.NewTour(ownerID, name, models.DefaultCanvasHeight)
	tour.ModeratedByID = moderatedBy
	tour.Archived = archived
	require.NoError(t, db.Create(tour).Error)
	return tour
}

func TestTourRepository_ListVisibility(t *testing.T) {
	db := newTestDB(t)
	repo := NewTourRepository(db)

	owner := &models.User{Login: "owner", PasswordHash: "x", CreatedAt: time.Now()}
	moderator := &models.User{Login: "mod", PasswordHash: "x", IsModerator: true, CreatedAt: time.Now()}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(moderator).Error)

	moderated := seedTour(t, db, "Approved", owner.ID, &moderator.ID, false)
	pending := seedTour(t, db, "Pending", owner.ID, nil, false)
	archived := seedTour(t, db, "Archived", owner.ID, &moderator.ID, true)

	// public view with moderation on: only the approved, unarchived tour
	tours, err := repo.List(TourListFilter{ModerationEnabled: true})
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, moderated.ID, tours[0].ID)

	// public view with moderation off: pending becomes visible too
	tours, err = repo.List(TourListFilter{ModerationEnabled: false})
	require.NoError(t, err)
	assert.Len(t, tours, 2)

	// self view: everything of the author's, archived and pending included
	tours, err = repo.List(TourListFilter{AuthorID: owner.ID, CheckSelf: true, ModerationEnabled: true})
	require.NoError(t, err)
	assert.Len(t, tours, 3)

	// moderator backlog: only the unmoderated tour
	tours, err = repo.List(TourListFilter{NotModerated: true, ModerationEnabled: true})
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, pending.ID, tours[0].ID)

	_ = archived
}

func TestTourRepository_ListSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewTourRepository(db)

	owner := &models.User{Login: "owner", PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, db.Create(owner).Error)

	seedTour(t, db, "City Walk", owner.ID, nil, false)
	seedTour(t, db, "Forest Trail", owner.ID, nil, false)

	tours, err := repo.List(TourListFilter{Search: "Walk"})
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, "City Walk", tours[0].Name)
}

func TestTourRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewTourRepository(db)

	owner := &models.User{Login: "owner", PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, db.Create(owner).Error)
	tag := &models.TourTag{Name: "Nature"}
	require.NoError(t, db.Create(tag).Error)

	tour := seedTour(t, db, "Doomed", owner.ID, nil, false)
	require.NoError(t, repo.CreateBlock(&models.TourBlock{Name: "B", TourID: tour.ID}))
	require.NoError(t, repo.AppendTag(tour, tag))
	require.NoError(t, db.Create(&models.TourReaction{Text: "ok", TourID: tour.ID, CreatedByID: owner.ID}).Error)

	require.NoError(t, repo.Delete(tour.ID))

	var blocks, reactions int64
	require.NoError(t, db.Model(&models.TourBlock{}).Where("tour_id = ?", tour.ID).Count(&blocks).Error)
	require.NoError(t, db.Model(&models.TourReaction{}).Where("tour_id = ?", tour.ID).Count(&reactions).Error)
	assert.EqualValues(t, 0, blocks)
	assert.EqualValues(t, 0, reactions)

	// the tag itself survives, only the association is gone
	var tags int64
	require.NoError(t, db.Model(&models.TourTag{}).Count(&tags).Error)
	assert.EqualValues(t, 1, tags)

	_, err := repo.GetByID(tour.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
