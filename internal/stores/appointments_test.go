package stores

import (
	"testing"
	"time"

	"clinic-server/internal/apperrors"
	"clinic-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppointment(t *testing.T) {
	db := setupTestDB(t)
	patient := seedPatient(t, db)
	doctor := seedDoctor(t, db)
	creator := seedUser(t, db)
	store := NewAppointmentStore(db)

	when := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	appt, err := store.Create(NewAppointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: when,
		DurationMinutes: 30,
		Reason:          strPtr("checkup"),
		CreatedBy:       creator.ID,
	})
	require.NoError(t, err)

	assert.NotZero(t, appt.ID)
	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Nil(t, appt.Notes)
	assert.True(t, appt.AppointmentDate.Equal(when))
	assert.False(t, appt.CreatedAt.IsZero())
	assert.False(t, appt.UpdatedAt.IsZero())
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	db := setupTestDB(t)
	doctor := seedDoctor(t, db)
	creator := seedUser(t, db)

	_, err := NewAppointmentStore(db).Create(NewAppointment{
		PatientID:       9999,
		DoctorID:        doctor.ID,
		AppointmentDate: time.Now().UTC(),
		DurationMinutes: 30,
		CreatedBy:       creator.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err, "patient"))
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	db := setupTestDB(t)
	patient := seedPatient(t, db)
	creator := seedUser(t, db)

	_, err := NewAppointmentStore(db).Create(NewAppointment{
		PatientID:       patient.ID,
		DoctorID:        9999,
		AppointmentDate: time.Now().UTC(),
		DurationMinutes: 30,
		CreatedBy:       creator.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err, "doctor"))
}

func TestSetStatusLifecycle(t *testing.T) {
	db := setupTestDB(t)
	store := NewAppointmentStore(db)
	appt := seedAppointment(t, db)

	updated, err := store.SetStatus(appt.ID, models.StatusConfirmed, models.OptString{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Nil(t, updated.Notes)

	updated, err = store.SetStatus(appt.ID, models.StatusCompleted, models.OptString{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Nil(t, updated.Notes)
	assert.True(t, updated.UpdatedAt.After(appt.UpdatedAt))
}

func TestSetStatusThreeWayNotes(t *testing.T) {
	db := setupTestDB(t)
	store := NewAppointmentStore(db)
	appt := seedAppointment(t, db)

	// Set notes explicitly.
	updated, err := store.SetStatus(appt.ID, models.StatusConfirmed, models.SetString("patient called ahead"))
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "patient called ahead", *updated.Notes)

	// Omitted notes leave the stored value untouched.
	updated, err = store.SetStatus(appt.ID, models.StatusInProgress, models.OptString{})
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "patient called ahead", *updated.Notes)

	// Explicit null clears them.
	updated, err = store.SetStatus(appt.ID, models.StatusCompleted, models.NullString())
	require.NoError(t, err)
	assert.Nil(t, updated.Notes)
}

func TestSetStatusUnknownAppointment(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewAppointmentStore(db).SetStatus(4242, models.StatusConfirmed, models.OptString{})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err, "appointment"))
}

func TestByDateRange(t *testing.T) {
	db := setupTestDB(t)
	store := NewAppointmentStore(db)
	patient := seedPatient(t, db)
	doctorA := seedDoctor(t, db)
	doctorB := seedDoctor(t, db)
	creator := seedUser(t, db)

	book := func(doctorID uint, at time.Time) models.Appointment {
		appt, err := store.Create(NewAppointment{
			PatientID:       patient.ID,
			DoctorID:        doctorID,
			AppointmentDate: at,
			DurationMinutes: 30,
			CreatedBy:       creator.ID,
		})
		require.NoError(t, err)
		return *appt
	}

	day := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	early := book(doctorA.ID, day.Add(10*time.Hour))
	midday := book(doctorB.ID, day.Add(12*time.Hour))
	late := book(doctorA.ID, day.Add(14*time.Hour))

	// Bounds are inclusive on both ends.
	got, err := store.ByDateRange(day.Add(10*time.Hour), day.Add(12*time.Hour), nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, midday.ID, got[1].ID)

	// Ascending by appointment_date across the whole day.
	got, err = store.ByDateRange(day, day.Add(24*time.Hour), nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].AppointmentDate.Before(got[i-1].AppointmentDate))
	}

	// Doctor filter.
	got, err = store.ByDateRange(day, day.Add(24*time.Hour), &doctorA.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, late.ID, got[1].ID)

	// A midnight end bound excludes later times that day.
	got, err = store.ByDateRange(day.Add(-24*time.Hour), day, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
