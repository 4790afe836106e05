package ticketmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/easy-event-api/test/helpers"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// TestTicketRepository_GetByEvent tests that tickets come back in id order and scoped to the event
func TestTicketRepository_GetByEvent(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)
	repo := NewTicketRepository(db)

	event, seeded := helpers.SeedEvent(t, db, "ordered", "ORDER0000003", "ORDER0000001", "ORDER0000002")
	helpers.SeedEvent(t, db, "other", "OTHER0000001")

	tickets, err := repo.GetByEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, tickets, 3)
	for i, ticket := range tickets {
		assert.Equal(t, seeded[i].Token, ticket.Token, "ticket %d", i)
	}
}

// TestTicketRepository_GetByToken tests the event preload and the unknown token case
func TestTicketRepository_GetByToken(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)
	repo := NewTicketRepository(db)

	event, _ := helpers.SeedEvent(t, db, "preload", "PRELOAD00001")

	ticket, err := repo.GetByToken("PRELOAD00001")
	require.NoError(t, err)
	require.NotNil(t, ticket)
	require.NotNil(t, ticket.Event)
	assert.Equal(t, event.Name, ticket.Event.Name)

	missing, err := repo.GetByToken("NOPE")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// TestTicketRepository_UpdateQrCodeURL tests replacing a QR location
func TestTicketRepository_UpdateQrCodeURL(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)
	repo := NewTicketRepository(db)

	_, tickets := helpers.SeedEvent(t, db, "qr", "QR0000000001")

	require.NoError(t, repo.UpdateQrCodeURL(tickets[0].ID, "https://storage.test/new.png"))

	var found model.Ticket
	require.NoError(t, db.First(&found, tickets[0].ID).Error)
	assert.Equal(t, "https://storage.test/new.png", found.QrCodeURL)
}

// TestTicketRepository_Counts tests the total and verified counters
func TestTicketRepository_Counts(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)
	repo := NewTicketRepository(db)

	_, tickets := helpers.SeedEvent(t, db, "counts", "COUNT0000001", "COUNT0000002")
	require.NoError(t, db.Model(tickets[1]).Update("is_verified", true).Error)

	total, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	verified, err := repo.CountVerified()
	require.NoError(t, err)
	assert.Equal(t, int64(1), verified)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
