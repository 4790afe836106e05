package participantmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/easy-event-api/test/helpers"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// TestParticipantRepository_Register tests that registering verifies the ticket
func TestParticipantRepository_Register(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)
	repo := NewParticipantRepository(db)

	_, tickets := helpers.SeedEvent(t, db, "register", "REGISTER0001")

	participant := &model.Participant{TicketID: tickets[0].ID, Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, repo.Register(participant))
	assert.NotZero(t, participant.ID)

	helpers.AssertRecordExists(t, db, &model.Ticket{}, "id = ? AND is_verified = ?", tickets[0].ID, true)
}

// TestParticipantRepository_Register_AlreadyUsed tests that a used ticket cannot register twice
func TestParticipantRepository_Register_AlreadyUsed(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)
	repo := NewParticipantRepository(db)

	_, tickets := helpers.SeedEvent(t, db, "used", "USED00000001")
	require.NoError(t, repo.Register(&model.Participant{TicketID: tickets[0].ID, Name: "Ada", Email: "ada@example.com"}))

	err := repo.Register(&model.Participant{TicketID: tickets[0].ID, Name: "Bob", Email: "bob@example.com"})
	assert.ErrorIs(t, err, ErrTicketAlreadyUsed)
	helpers.AssertRecordNotExists(t, db, &model.Participant{}, "name = ?", "Bob")
}

// TestParticipantRepository_Queries tests lookups, preloads and counters
func TestParticipantRepository_Queries(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)
	repo := NewParticipantRepository(db)

	first, firstTickets := helpers.SeedEvent(t, db, "first", "FIRST0000001", "FIRST0000002")
	second, secondTickets := helpers.SeedEvent(t, db, "second", "SECOND000001")

	ada := &model.Participant{TicketID: firstTickets[0].ID, Name: "Ada", Email: "ada@example.com"}
	bob := &model.Participant{TicketID: firstTickets[1].ID, Name: "Bob", Email: "bob@example.com"}
	cy := &model.Participant{TicketID: secondTickets[0].ID, Name: "Cy", Email: "cy@example.com"}
	for _, p := range []*model.Participant{ada, bob, cy} {
		require.NoError(t, repo.Register(p))
	}

	found, err := repo.GetById(ada.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Ticket)
	require.NotNil(t, found.Ticket.Event)
	assert.Equal(t, "FIRST0000001", found.Ticket.Token)
	assert.Equal(t, first.ID, found.Ticket.Event.ID)
	assert.Nil(t, found.Certificate)

	missing, err := repo.GetById(cy.ID + 1000)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byEvent, err := repo.GetByEvent(first.ID)
	require.NoError(t, err)
	assert.Len(t, byEvent, 2)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	total, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	counts, err := repo.CountByEvent()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[first.ID])
	assert.Equal(t, int64(1), counts[second.ID])
}
