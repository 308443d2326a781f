package planner

import (
	"github.com/google/uuid"

	"github.com/tazman887/rork-organizator-nunta/internal/domain"
)

type synchronizer interface {
	Current() domain.Document
	ApplyPartial(domain.Patch)
}

// Planner exposes the named mutation operations over the synchronizer.
// Every operation reads the current document, computes the next lists
// with the pure domain transforms and hands a partial update back.
type Planner struct {
	sync  synchronizer
	newID func() string
}

func New(sync synchronizer) *Planner {
	return &Planner{sync: sync, newID: uuid.NewString}
}

func (p *Planner) Document() domain.Document {
	return p.sync.Current()
}

// --- Wedding details ---

func (p *Planner) UpdateWeddingDetails(patch domain.DetailsPatch) domain.WeddingDetails {
	cur := p.sync.Current()
	next := domain.MergeDetails(cur.WeddingState, patch)
	p.sync.ApplyPartial(domain.Patch{Details: &next})
	return next
}

// --- Tasks ---

func (p *Planner) AddTask(title, category string) domain.Task {
	cur := p.sync.Current()
	task := domain.Task{
		ID:       p.newID(),
		Title:    title,
		Category: category,
	}
	p.sync.ApplyPartial(domain.Patch{Tasks: domain.AppendTask(cur.Tasks, task)})
	return task
}

func (p *Planner) ToggleTask(id string) {
	cur := p.sync.Current()
	p.sync.ApplyPartial(domain.Patch{Tasks: domain.ToggleTask(cur.Tasks, id)})
}

// --- Guests ---

// AddGuest appends a pending, unseated guest. The core enforces nothing
// beyond what the callers already trimmed; defaults follow the invitation
// lifecycle (nothing confirmed until the guest answers).
func (p *Planner) AddGuest(name string, side domain.GuestSide, numPeople, numChildren int, specialNotes string) domain.Guest {
	cur := p.sync.Current()
	guest := domain.Guest{
		ID:               p.newID(),
		Name:             name,
		Status:           domain.GuestStatusPending,
		NumberOfPeople:   numPeople,
		NumberOfChildren: numChildren,
		Side:             side,
		SpecialMenuNotes: specialNotes,
	}
	p.sync.ApplyPartial(domain.Patch{Guests: domain.AppendGuest(cur.Guests, guest)})
	return guest
}

func (p *Planner) UpdateGuestStatus(id string, status domain.GuestStatus, confirmedPeople, confirmedChildren *int) {
	cur := p.sync.Current()
	p.sync.ApplyPartial(domain.Patch{
		Guests: domain.SetGuestStatus(cur.Guests, id, status, confirmedPeople, confirmedChildren),
	})
}

func (p *Planner) UpdateGuest(id, name string, side domain.GuestSide, numPeople, numChildren int, specialNotes string) {
	cur := p.sync.Current()
	p.sync.ApplyPartial(domain.Patch{
		Guests: domain.UpdateGuestInfo(cur.Guests, id, name, side, numPeople, numChildren, specialNotes),
	})
}

func (p *Planner) DeleteGuest(id string) {
	cur := p.sync.Current()
	p.sync.ApplyPartial(domain.Patch{Guests: domain.RemoveGuest(cur.Guests, id)})
}

func (p *Planner) ToggleInvitationSent(id string) {
	cur := p.sync.Current()
	p.sync.ApplyPartial(domain.Patch{Guests: domain.ToggleInvitationSent(cur.Guests, id)})
}

// AssignGuestToTable seats guestID at tableID; an empty tableID clears
// the seat.
func (p *Planner) AssignGuestToTable(guestID, tableID string) {
	cur := p.sync.Current()
	p.sync.ApplyPartial(domain.Patch{Guests: domain.AssignGuestTable(cur.Guests, guestID, tableID)})
}

// --- Budget ---

func (p *Planner) AddExpense(title string, amount float64, category string) domain.Expense {
	cur := p.sync.Current()
	expense := domain.Expense{
		ID:       p.newID(),
		Title:    title,
		Amount:   amount,
		Category: category,
	}
	p.sync.ApplyPartial(domain.Patch{Expenses: domain.AppendExpense(cur.Expenses, expense)})
	return expense
}

func (p *Planner) TotalBudget() float64 {
	return domain.TotalBudget(p.sync.Current().Expenses)
}

func (p *Planner) BudgetByCategory() map[string]float64 {
	return domain.BudgetByCategory(p.sync.Current().Expenses)
}

// --- Tables ---

func (p *Planner) AddTable(number, seats int) domain.Table {
	cur := p.sync.Current()
	table := domain.Table{
		ID:     p.newID(),
		Number: number,
		Seats:  seats,
	}
	p.sync.ApplyPartial(domain.Patch{Tables: domain.AppendTable(cur.Tables, table)})
	return table
}

// DeleteTable removes the table and unseats every guest that referenced
// it, in one update.
func (p *Planner) DeleteTable(id string) {
	cur := p.sync.Current()
	tables, guests := domain.RemoveTable(cur.Tables, cur.Guests, id)
	p.sync.ApplyPartial(domain.Patch{Tables: tables, Guests: guests})
}

// --- Read side ---

func (p *Planner) GuestStats() domain.GuestStats {
	return domain.Summarize(p.sync.Current().Guests)
}

func (p *Planner) TableOccupancy() []domain.TableOccupancy {
	cur := p.sync.Current()
	return domain.Occupancy(cur.Tables, cur.Guests)
}
