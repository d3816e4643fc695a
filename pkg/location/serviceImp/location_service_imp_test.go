package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"beetguru/database"
	"beetguru/entities"
	assessRepoImp "beetguru/pkg/assessment/repositoryImp"
	locRepoImp "beetguru/pkg/location/repositoryImp"
	"beetguru/pkg/location/service"
)

func newTestSvc(t *testing.T) (service.LocationService, *gorm.DB) {
	t.Helper()
	db := database.OpenSQLite(":memory:")
	return New(locRepoImp.New(db), assessRepoImp.New(db)), db
}

func TestDelete_RefusesReferencedPaddock(t *testing.T) {
	svc, db := newTestSvc(t)
	loc, err := svc.Create(&entities.Location{UserID: 1, Name: "North Paddock", AreaHa: 3.5})
	require.NoError(t, err)

	require.NoError(t, db.Create(&entities.Assessment{
		LocationID: loc.LocationID,
		Status:     entities.AssessmentStatusCompleted,
	}).Error)

	err = svc.Delete(loc.LocationID)
	require.ErrorIs(t, err, ErrLocationInUse)
	assert.EqualError(t, err, "Cannot delete location that is used in assessments")

	// Still there.
	_, err = svc.Get(loc.LocationID)
	assert.NoError(t, err)
}

func TestDelete_UnreferencedPaddock(t *testing.T) {
	svc, _ := newTestSvc(t)
	loc, err := svc.Create(&entities.Location{UserID: 1, Name: "Back Field", AreaHa: 1.2})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(loc.LocationID))
	_, err = svc.Get(loc.LocationID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreate_DefaultsStatus(t *testing.T) {
	svc, _ := newTestSvc(t)
	loc, err := svc.Create(&entities.Location{UserID: 1, Name: "East Block", AreaHa: 2})
	require.NoError(t, err)
	assert.Equal(t, entities.LocationStatusNotStarted, loc.Status)
}

func TestListForUser_AttachesDraft(t *testing.T) {
	svc, db := newTestSvc(t)
	loc, err := svc.Create(&entities.Location{UserID: 1, Name: "North Paddock", AreaHa: 3.5})
	require.NoError(t, err)

	a := entities.Assessment{LocationID: loc.LocationID, Status: entities.AssessmentStatusDraft}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Model(&entities.Location{}).Where("location_id = ?", loc.LocationID).
		Update("assessment_id", a.AssessmentID).Error)

	out, err := svc.ListForUser(1, true)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Draft)
	assert.Equal(t, a.AssessmentID, out[0].Draft.AssessmentID)

	plain, err := svc.ListForUser(1, false)
	require.NoError(t, err)
	require.Len(t, plain, 1)
	assert.Nil(t, plain[0].Draft)
}

func TestUpdate_PointerPatch(t *testing.T) {
	svc, _ := newTestSvc(t)
	loc, err := svc.Create(&entities.Location{UserID: 1, Name: "Old Name", AreaHa: 2})
	require.NoError(t, err)

	name := "New Name"
	area := 4.25
	out, err := svc.Update(loc.LocationID, service.LocationPatch{Name: &name, AreaHa: &area})
	require.NoError(t, err)
	assert.Equal(t, "New Name", out.Name)
	assert.Equal(t, 4.25, out.AreaHa)

	// Omitted fields untouched.
	out, err = svc.Update(loc.LocationID, service.LocationPatch{})
	require.NoError(t, err)
	assert.Equal(t, "New Name", out.Name)
}
