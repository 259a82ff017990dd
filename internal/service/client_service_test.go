package service

import (
	"context"
	"testing"

	"github.com/layebamba/Fadj-MA/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreate_FullName(t *testing.T) {
	svc := NewClientService(newStubClientRepo())

	resp, err := svc.Create(context.Background(), dto.CreateClientRequest{
		FirstName: "Moussa",
		LastName:  "Ndiaye",
		Gender:    "M",
		BirthDate: "1985-03-20",
		Phone:     "776543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "Moussa Ndiaye", resp.FullName)
	require.NotNil(t, resp.BirthDate)
	assert.Equal(t, "1985-03-20", *resp.BirthDate)
}

func TestClientCreate_BadBirthDate(t *testing.T) {
	svc := NewClientService(newStubClientRepo())

	_, err := svc.Create(context.Background(), dto.CreateClientRequest{
		FirstName: "Awa",
		LastName:  "Ba",
		Gender:    "F",
		BirthDate: "25/01/1995",
		Phone:     "778765432",
	})
	assert.ErrorContains(t, err, "Date de naissance invalide")
}

func TestClientUpdate_PartialFields(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo)

	created, err := svc.Create(context.Background(), dto.CreateClientRequest{
		FirstName: "Cheikh",
		LastName:  "Sy",
		Gender:    "M",
		Phone:     "774567890",
	})
	require.NoError(t, err)

	addr := "Mermoz, Dakar"
	resp, err := svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateClientRequest{
		Address: &addr,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mermoz, Dakar", resp.Address)
	assert.Equal(t, "Cheikh", resp.FirstName)
	assert.Equal(t, "774567890", resp.Phone)
}

func TestClientGet_Unknown(t *testing.T) {
	svc := NewClientService(newStubClientRepo())
	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "Client introuvable")
}
