package stores

import (
	"testing"

	"clinic-server/internal/apperrors"
	"clinic-server/internal/models"
	"clinic-server/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := setupTestDB(t)

	user, err := NewUserStore(db).Create("ana@clinic.test", "s3cret-pass", "Ana", "Lima", models.RoleSecretary)
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, utils.CheckPassword("s3cret-pass", user.PasswordHash))
	assert.False(t, utils.CheckPassword("wrong", user.PasswordHash))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	store := NewUserStore(db)

	_, err := store.Create("dup@clinic.test", "s3cret-pass", "First", "Taken", models.RoleSuperAdmin)
	require.NoError(t, err)

	_, err = store.Create("dup@clinic.test", "s3cret-pass", "Second", "Comer", models.RoleDoctor)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUniqueness, apperrors.KindOf(err))
}

func TestSpecialtyCatalog(t *testing.T) {
	db := setupTestDB(t)
	store := NewSpecialtyStore(db)

	created, err := store.Create("Cardiology", strPtr("Heart and vascular care"))
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	_, err = store.Create("Cardiology", nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUniqueness, apperrors.KindOf(err))

	retired, err := store.Create("Phrenology", nil)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Specialty{}).
		Where("id = ?", retired.ID).
		Update("is_active", false).Error)

	active, err := store.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Cardiology", active[0].Name)
}
