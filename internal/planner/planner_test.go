package planner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tazman887/rork-organizator-nunta/internal/domain"
)

// fakeSync applies patches to an in-memory document, giving operations
// the same strictly sequential most-recent-write view the synchronizer
// provides.
type fakeSync struct {
	doc     domain.Document
	applied int
}

func (f *fakeSync) Current() domain.Document {
	return f.doc
}

func (f *fakeSync) ApplyPartial(p domain.Patch) {
	f.doc = f.doc.Apply(p)
	f.applied++
}

func newTestPlanner() (*Planner, *fakeSync) {
	sync := &fakeSync{doc: domain.Empty()}
	p := New(sync)

	n := 0
	p.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return p, sync
}

func TestAddGuest_Defaults(t *testing.T) {
	p, sync := newTestPlanner()

	guest := p.AddGuest("Ana Pop", domain.SideBride, 2, 1, "")

	require.Len(t, sync.doc.Guests, 1)
	got := sync.doc.Guests[0]
	assert.Equal(t, guest, got)
	assert.Equal(t, "Ana Pop", got.Name)
	assert.Equal(t, domain.GuestStatusPending, got.Status)
	assert.Equal(t, 2, got.NumberOfPeople)
	assert.Equal(t, 1, got.NumberOfChildren)
	assert.Zero(t, got.ConfirmedPeople)
	assert.Zero(t, got.ConfirmedChildren)
	assert.False(t, got.InvitationSent)
	assert.Empty(t, got.TableID)
}

func TestAddGuest_GeneratesUniqueIDs(t *testing.T) {
	p, sync := newTestPlanner()

	a := p.AddGuest("Ana", domain.SideBride, 1, 0, "")
	b := p.AddGuest("Mihai", domain.SideGroom, 1, 0, "")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, sync.doc.Guests, 2)
}

func TestUpdateGuestStatus_ConfirmCopiesCounts(t *testing.T) {
	p, sync := newTestPlanner()
	g := p.AddGuest("Ana", domain.SideBride, 4, 2, "")

	p.UpdateGuestStatus(g.ID, domain.GuestStatusConfirmed, nil, nil)

	got := sync.doc.Guests[0]
	assert.Equal(t, domain.GuestStatusConfirmed, got.Status)
	assert.Equal(t, 4, got.ConfirmedPeople)
	assert.Equal(t, 2, got.ConfirmedChildren)
}

func TestUpdateGuestStatus_DeclinedClearsSeat(t *testing.T) {
	p, sync := newTestPlanner()
	g := p.AddGuest("Ana", domain.SideBride, 2, 0, "")
	table := p.AddTable(1, 8)
	p.AssignGuestToTable(g.ID, table.ID)

	p.UpdateGuestStatus(g.ID, domain.GuestStatusDeclined, nil, nil)

	assert.Empty(t, sync.doc.Guests[0].TableID)
	assert.Zero(t, sync.doc.Guests[0].ConfirmedPeople)
}

func TestUpdateGuestStatus_UnknownIDIsNoop(t *testing.T) {
	p, sync := newTestPlanner()
	p.AddGuest("Ana", domain.SideBride, 1, 0, "")
	before := sync.doc

	p.UpdateGuestStatus("missing", domain.GuestStatusConfirmed, nil, nil)

	assert.Equal(t, before.Guests, sync.doc.Guests)
}

func TestDeleteGuest(t *testing.T) {
	p, sync := newTestPlanner()
	g := p.AddGuest("Ana", domain.SideBride, 1, 0, "")
	p.AddGuest("Mihai", domain.SideGroom, 1, 0, "")

	p.DeleteGuest(g.ID)

	require.Len(t, sync.doc.Guests, 1)
	assert.Equal(t, "Mihai", sync.doc.Guests[0].Name)
}

func TestDeleteTable_UnseatsGuests(t *testing.T) {
	p, sync := newTestPlanner()
	table := p.AddTable(1, 8)
	a := p.AddGuest("Ana", domain.SideBride, 3, 1, "")
	b := p.AddGuest("Mihai", domain.SideGroom, 4, 0, "")
	p.AssignGuestToTable(a.ID, table.ID)
	p.AssignGuestToTable(b.ID, table.ID)

	p.DeleteTable(table.ID)

	assert.Empty(t, sync.doc.Tables)
	for _, g := range sync.doc.Guests {
		assert.Empty(t, g.TableID)
	}
}

func TestToggleTask_Idempotence(t *testing.T) {
	p, sync := newTestPlanner()
	task := p.AddTask("Book venue", "venue")

	p.ToggleTask(task.ID)
	assert.True(t, sync.doc.Tasks[0].Completed)

	p.ToggleTask(task.ID)
	assert.False(t, sync.doc.Tasks[0].Completed)
}

func TestAddExpense_AndTotals(t *testing.T) {
	p, _ := newTestPlanner()
	p.AddExpense("Restaurant", 5000, "venue")
	p.AddExpense("Flori", 800, "decor")
	p.AddExpense("Lumânări", 200, "decor")

	assert.Equal(t, 6000.0, p.TotalBudget())
	assert.Equal(t, 1000.0, p.BudgetByCategory()["decor"])
}

func TestUpdateWeddingDetails_PartialMerge(t *testing.T) {
	p, sync := newTestPlanner()

	name1 := "Ana"
	p.UpdateWeddingDetails(domain.DetailsPatch{PartnerName1: &name1})
	name2 := "Mihai"
	p.UpdateWeddingDetails(domain.DetailsPatch{PartnerName2: &name2})

	assert.Equal(t, "Ana", sync.doc.WeddingState.PartnerName1)
	assert.Equal(t, "Mihai", sync.doc.WeddingState.PartnerName2)
}

func TestEveryMutationSynchronizesOnce(t *testing.T) {
	p, sync := newTestPlanner()

	g := p.AddGuest("Ana", domain.SideBride, 1, 0, "")
	p.ToggleInvitationSent(g.ID)
	p.UpdateGuest(g.ID, "Ana Pop", domain.SideBride, 2, 0, "vegan")

	assert.Equal(t, 3, sync.applied)
	got := sync.doc.Guests[0]
	assert.True(t, got.InvitationSent)
	assert.Equal(t, "Ana Pop", got.Name)
	assert.Equal(t, "vegan", got.SpecialMenuNotes)
}

func TestGuestStats_ReadsCurrentDocument(t *testing.T) {
	p, _ := newTestPlanner()
	g := p.AddGuest("Ana", domain.SideBride, 2, 1, "vegan")
	p.AddGuest("Mihai", domain.SideGroom, 1, 0, "")
	p.UpdateGuestStatus(g.ID, domain.GuestStatusConfirmed, nil, nil)

	stats := p.GuestStats()
	assert.Equal(t, 2, stats.TotalInvitations)
	assert.Equal(t, 1, stats.ConfirmedInvitations)
	assert.Equal(t, 3, stats.ConfirmedPeople)
}

func TestTableOccupancy(t *testing.T) {
	p, _ := newTestPlanner()
	table := p.AddTable(1, 8)
	g := p.AddGuest("Ana", domain.SideBride, 3, 1, "")
	p.AssignGuestToTable(g.ID, table.ID)
	p.UpdateGuestStatus(g.ID, domain.GuestStatusConfirmed, nil, nil)

	occ := p.TableOccupancy()
	require.Len(t, occ, 1)
	assert.Equal(t, 4, occ[0].Confirmed)
	assert.Equal(t, 8, occ[0].Table.Seats)
}
