package domain

import "time"

type GuestStatus string

const (
	GuestStatusConfirmed GuestStatus = "confirmed"
	GuestStatusPending   GuestStatus = "pending"
	GuestStatusDeclined  GuestStatus = "declined"
)

type GuestSide string

const (
	SideGroom GuestSide = "groom"
	SideBride GuestSide = "bride"
)

// WeddingDetails is the singleton part of the document. WeddingDate is
// nil until the couple picks a date.
type WeddingDetails struct {
	WeddingDate  *time.Time `json:"weddingDate"`
	PartnerName1 string     `json:"partnerName1"`
	PartnerName2 string     `json:"partnerName2"`
}

type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
}

// Guest is one invitation, covering NumberOfPeople adults and
// NumberOfChildren children. TableID is a back-reference to Table.ID;
// empty means unseated.
type Guest struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Status            GuestStatus `json:"status"`
	NumberOfPeople    int         `json:"numberOfPeople"`
	ConfirmedPeople   int         `json:"confirmedPeople"`
	NumberOfChildren  int         `json:"numberOfChildren"`
	ConfirmedChildren int         `json:"confirmedChildren"`
	Side              GuestSide   `json:"side"`
	InvitationSent    bool        `json:"invitationSent"`
	SpecialMenuNotes  string      `json:"specialMenuNotes"`
	TableID           string      `json:"tableId,omitempty"`
}

type Expense struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// Table.Number is a display label and is not enforced unique.
type Table struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Seats  int    `json:"seats"`
}

// Document is the full planning snapshot. It is the unit of persistence:
// every save rewrites the whole document.
type Document struct {
	WeddingState WeddingDetails `json:"weddingState"`
	Tasks        []Task         `json:"tasks"`
	Guests       []Guest        `json:"guests"`
	Expenses     []Expense      `json:"expenses"`
	Tables       []Table        `json:"tables"`
}

// Empty returns a document with non-nil lists so the marshaled form is
// always [] rather than null.
func Empty() Document {
	return Document{
		Tasks:    []Task{},
		Guests:   []Guest{},
		Expenses: []Expense{},
		Tables:   []Table{},
	}
}

// Normalize replaces nil lists with empty ones. Documents decoded from
// external JSON go through this before entering the cache.
func (d *Document) Normalize() {
	if d.Tasks == nil {
		d.Tasks = []Task{}
	}
	if d.Guests == nil {
		d.Guests = []Guest{}
	}
	if d.Expenses == nil {
		d.Expenses = []Expense{}
	}
	if d.Tables == nil {
		d.Tables = []Table{}
	}
}

// Clone returns a copy whose lists do not share backing arrays with the
// receiver.
func (d Document) Clone() Document {
	out := d
	out.Tasks = append([]Task{}, d.Tasks...)
	out.Guests = append([]Guest{}, d.Guests...)
	out.Expenses = append([]Expense{}, d.Expenses...)
	out.Tables = append([]Table{}, d.Tables...)
	return out
}
