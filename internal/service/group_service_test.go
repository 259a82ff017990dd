package service

import (
	"context"
	"testing"
	"time"

	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCreate_DuplicateName(t *testing.T) {
	svc := NewGroupService(newStubGroupRepo())

	_, err := svc.Create(context.Background(), dto.CreateGroupRequest{Name: "Antibiotiques"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateGroupRequest{Name: "Antibiotiques"})
	assert.ErrorContains(t, err, "Un groupe avec ce nom existe déjà")
}

func TestGroupUpdate_PartialFields(t *testing.T) {
	repo := newStubGroupRepo()
	svc := NewGroupService(repo)

	created, err := svc.Create(context.Background(), dto.CreateGroupRequest{
		Name:        "Antalgiques",
		Description: "Médicaments contre la douleur",
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateGroupRequest{
		Name: "Antalgiques et Antipyrétiques",
	})
	require.NoError(t, err)
	assert.Equal(t, "Antalgiques et Antipyrétiques", resp.Name)
	assert.Equal(t, "Médicaments contre la douleur", resp.Description)
}

func TestGroupResponse_TimestampsInUTC(t *testing.T) {
	repo := newStubGroupRepo()
	svc := NewGroupService(repo)

	// stored in a non-UTC zone, rendered normalized to UTC
	loc := time.FixedZone("UTC+3", 3*3600)
	g := &model.MedicineGroup{
		Name:      "Vitamines",
		CreatedAt: time.Date(2026, 8, 30, 23, 30, 0, 0, loc),
		UpdatedAt: time.Date(2026, 8, 31, 1, 0, 0, 0, loc),
	}
	require.NoError(t, repo.Create(context.Background(), g))

	resp, err := svc.GetByID(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30T20:30:00Z", resp.CreatedAt)
	assert.Equal(t, "2026-08-30T22:00:00Z", resp.UpdatedAt)
}

func TestGroupDelete_Unknown(t *testing.T) {
	svc := NewGroupService(newStubGroupRepo())
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "Groupe introuvable")
}
