package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctorkays/internal/models"
)

type fakeRoomRepo struct {
	byName map[string]*models.Room
	nextID int
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{byName: map[string]*models.Room{}, nextID: 1}
}

func (f *fakeRoomRepo) Create(room *models.Room) error {
	room.ID = f.nextID
	f.nextID++
	room.CreatedAt = time.Now()
	f.byName[room.RoomName] = room
	return nil
}

func (f *fakeRoomRepo) GetByRoomName(roomName string) (*models.Room, error) {
	room, ok := f.byName[roomName]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return room, nil
}

func (f *fakeRoomRepo) UpdateStatus(id int, status string) error { return nil }

func newRoomFixture(now time.Time) (*roomService, *fakeRoomRepo) {
	repo := newFakeRoomRepo()
	svc := &roomService{repo: repo, now: func() time.Time { return now }}
	return svc, repo
}

func TestRoomCreate(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	svc, _ := newRoomFixture(now)

	room, err := svc.Create(models.CreateRoomRequest{
		Name:             "Dr Kays",
		RoomName:         "kays-checkup",
		ConsultationDate: "2026-03-11",
		StartTime:        "14:00",
		EndTime:          "14:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "kays-checkup", room.RoomName)
	assert.Equal(t, models.RoomStatusScheduled, room.Status)
	assert.True(t, room.StartTime.Before(room.EndTime))
}

func TestRoomCreateGeneratesName(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	svc, _ := newRoomFixture(now)

	room, err := svc.Create(models.CreateRoomRequest{
		Name:             "Dr Kays",
		ConsultationDate: "2026-03-11",
		StartTime:        "14:00",
		EndTime:          "14:30",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, room.RoomName)
}

func TestRoomCreateValidation(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	svc, _ := newRoomFixture(now)

	cases := []struct {
		name string
		req  models.CreateRoomRequest
	}{
		{"missing fields", models.CreateRoomRequest{Name: "Dr Kays"}},
		{"bad date", models.CreateRoomRequest{Name: "Dr Kays", ConsultationDate: "11-03-2026", StartTime: "14:00", EndTime: "15:00"}},
		{"bad time", models.CreateRoomRequest{Name: "Dr Kays", ConsultationDate: "2026-03-11", StartTime: "2pm", EndTime: "15:00"}},
		{"start after end", models.CreateRoomRequest{Name: "Dr Kays", ConsultationDate: "2026-03-11", StartTime: "15:00", EndTime: "14:00"}},
		{"start in past", models.CreateRoomRequest{Name: "Dr Kays", ConsultationDate: "2026-03-09", StartTime: "14:00", EndTime: "15:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.req)
			assert.Error(t, err)
		})
	}
}

func TestRoomCreateDuplicateName(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	svc, _ := newRoomFixture(now)

	req := models.CreateRoomRequest{
		Name:             "Dr Kays",
		RoomName:         "kays-checkup",
		ConsultationDate: "2026-03-11",
		StartTime:        "14:00",
		EndTime:          "14:30",
	}
	_, err := svc.Create(req)
	require.NoError(t, err)

	_, err = svc.Create(req)
	assert.ErrorIs(t, err, ErrRoomExists)
}

func TestRoomValidateWindow(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	svc, _ := newRoomFixture(created)

	_, err := svc.Create(models.CreateRoomRequest{
		Name:             "Dr Kays",
		RoomName:         "kays-checkup",
		ConsultationDate: "2026-03-11",
		StartTime:        "14:00",
		EndTime:          "14:30",
	})
	require.NoError(t, err)

	// before the window
	svc.now = func() time.Time { return time.Date(2026, 3, 11, 13, 59, 0, 0, time.Local) }
	_, err = svc.Validate("kays-checkup")
	assert.ErrorIs(t, err, ErrRoomNotStarted)

	// inside the window
	svc.now = func() time.Time { return time.Date(2026, 3, 11, 14, 15, 0, 0, time.Local) }
	room, err := svc.Validate("kays-checkup")
	require.NoError(t, err)
	assert.Equal(t, "kays-checkup", room.RoomName)

	// after the window
	svc.now = func() time.Time { return time.Date(2026, 3, 11, 14, 31, 0, 0, time.Local) }
	_, err = svc.Validate("kays-checkup")
	assert.ErrorIs(t, err, ErrRoomExpired)

	// unknown room
	_, err = svc.Validate("nope")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
