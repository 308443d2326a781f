package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func sampleGuests() []Guest {
	return []Guest{
		{
			ID:               "g1",
			Name:             "Ana Pop",
			Status:           GuestStatusPending,
			NumberOfPeople:   2,
			NumberOfChildren: 1,
			Side:             SideBride,
		},
		{
			ID:               "g2",
			Name:             "Mihai Ionescu",
			Status:           GuestStatusConfirmed,
			NumberOfPeople:   4,
			ConfirmedPeople:  4,
			NumberOfChildren: 0,
			Side:             SideGroom,
			TableID:          "t1",
		},
	}
}

func TestSetGuestStatus_ConfirmCopiesInvitedCounts(t *testing.T) {
	guests := SetGuestStatus(sampleGuests(), "g1", GuestStatusConfirmed, nil, nil)

	require.Len(t, guests, 2)
	assert.Equal(t, GuestStatusConfirmed, guests[0].Status)
	assert.Equal(t, 2, guests[0].ConfirmedPeople)
	assert.Equal(t, 1, guests[0].ConfirmedChildren)
}

func TestSetGuestStatus_ExplicitCountsWin(t *testing.T) {
	guests := SetGuestStatus(sampleGuests(), "g1", GuestStatusConfirmed, intp(1), intp(0))

	assert.Equal(t, 1, guests[0].ConfirmedPeople)
	assert.Equal(t, 0, guests[0].ConfirmedChildren)
}

func TestSetGuestStatus_PendingResetsCounts(t *testing.T) {
	guests := SetGuestStatus(sampleGuests(), "g2", GuestStatusPending, nil, nil)

	assert.Equal(t, GuestStatusPending, guests[1].Status)
	assert.Equal(t, 0, guests[1].ConfirmedPeople)
	assert.Equal(t, 0, guests[1].ConfirmedChildren)
	assert.Equal(t, "t1", guests[1].TableID, "pending must keep the seat")
}

func TestSetGuestStatus_DeclinedClearsSeat(t *testing.T) {
	guests := SetGuestStatus(sampleGuests(), "g2", GuestStatusDeclined, nil, nil)

	assert.Equal(t, GuestStatusDeclined, guests[1].Status)
	assert.Equal(t, 0, guests[1].ConfirmedPeople)
	assert.Empty(t, guests[1].TableID)
}

func TestSetGuestStatus_UnknownIDIsNoop(t *testing.T) {
	before := sampleGuests()
	after := SetGuestStatus(before, "missing", GuestStatusDeclined, nil, nil)

	assert.Equal(t, before, after)
}

func TestSetGuestStatus_DoesNotMutateInput(t *testing.T) {
	before := sampleGuests()
	_ = SetGuestStatus(before, "g1", GuestStatusConfirmed, nil, nil)

	assert.Equal(t, GuestStatusPending, before[0].Status)
	assert.Equal(t, 0, before[0].ConfirmedPeople)
}

func TestToggleTask_TwiceRestoresOriginal(t *testing.T) {
	tasks := []Task{{ID: "t1", Title: "Book venue", Category: "venue"}}

	once := ToggleTask(tasks, "t1")
	require.True(t, once[0].Completed)

	twice := ToggleTask(once, "t1")
	assert.False(t, twice[0].Completed)
}

func TestRemoveGuest(t *testing.T) {
	guests := RemoveGuest(sampleGuests(), "g1")

	require.Len(t, guests, 1)
	assert.Equal(t, "g2", guests[0].ID)
}

func TestToggleInvitationSent(t *testing.T) {
	guests := ToggleInvitationSent(sampleGuests(), "g1")
	assert.True(t, guests[0].InvitationSent)

	guests = ToggleInvitationSent(guests, "g1")
	assert.False(t, guests[0].InvitationSent)
}

func TestAssignGuestTable_AndClear(t *testing.T) {
	guests := AssignGuestTable(sampleGuests(), "g1", "t9")
	assert.Equal(t, "t9", guests[0].TableID)

	guests = AssignGuestTable(guests, "g1", "")
	assert.Empty(t, guests[0].TableID)
}

func TestUpdateGuestInfo(t *testing.T) {
	guests := UpdateGuestInfo(sampleGuests(), "g1", "Ana Popescu", SideGroom, 3, 2, "vegetarian")

	g := guests[0]
	assert.Equal(t, "Ana Popescu", g.Name)
	assert.Equal(t, SideGroom, g.Side)
	assert.Equal(t, 3, g.NumberOfPeople)
	assert.Equal(t, 2, g.NumberOfChildren)
	assert.Equal(t, "vegetarian", g.SpecialMenuNotes)
	// Status and confirmations are untouched by an info edit.
	assert.Equal(t, GuestStatusPending, g.Status)
}

func TestRemoveTable_CascadesSeatClear(t *testing.T) {
	tables := []Table{
		{ID: "t1", Number: 1, Seats: 8},
		{ID: "t2", Number: 2, Seats: 6},
	}
	guests := []Guest{
		{ID: "g1", Name: "A", Status: GuestStatusConfirmed, TableID: "t1", ConfirmedPeople: 4},
		{ID: "g2", Name: "B", Status: GuestStatusConfirmed, TableID: "t1", ConfirmedPeople: 4},
		{ID: "g3", Name: "C", Status: GuestStatusPending, TableID: "t2"},
	}

	nextTables, nextGuests := RemoveTable(tables, guests, "t1")

	require.Len(t, nextTables, 1)
	assert.Equal(t, "t2", nextTables[0].ID)
	for _, g := range nextGuests {
		assert.NotEqual(t, "t1", g.TableID)
	}
	assert.Equal(t, "t2", nextGuests[2].TableID, "other seats must survive")
}

func TestMergeDetails_PartialFields(t *testing.T) {
	cur := WeddingDetails{PartnerName1: "Ana", PartnerName2: "Mihai"}
	name := "Ana-Maria"

	next := MergeDetails(cur, DetailsPatch{PartnerName1: &name})

	assert.Equal(t, "Ana-Maria", next.PartnerName1)
	assert.Equal(t, "Mihai", next.PartnerName2)
	assert.Nil(t, next.WeddingDate)
}

func TestMergeDetails_ClearWeddingDate(t *testing.T) {
	date := time.Date(2026, 9, 12, 15, 0, 0, 0, time.UTC)
	cur := WeddingDetails{WeddingDate: &date, PartnerName1: "Ana"}

	// An untouched date survives unrelated updates.
	name := "Ana-Maria"
	next := MergeDetails(cur, DetailsPatch{PartnerName1: &name})
	require.NotNil(t, next.WeddingDate)

	// Clearing is explicit, not the nil-pointer "unchanged" case.
	next = MergeDetails(cur, DetailsPatch{ClearWeddingDate: true})
	assert.Nil(t, next.WeddingDate)
	assert.Equal(t, "Ana", next.PartnerName1)
}
