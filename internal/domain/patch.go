package domain

import "time"

// Patch is a partial document. A nil field means "leave unchanged"; a
// non-nil field fully replaces the corresponding document field. This is
// whole-field replacement, not a deep merge: changing one guest means
// supplying the entire recomputed guest list.
type Patch struct {
	Details  *WeddingDetails
	Tasks    []Task
	Guests   []Guest
	Expenses []Expense
	Tables   []Table
}

// Apply merges p into d and returns the result. The receiver is not
// modified.
func (d Document) Apply(p Patch) Document {
	next := d.Clone()
	if p.Details != nil {
		next.WeddingState = *p.Details
	}
	if p.Tasks != nil {
		next.Tasks = p.Tasks
	}
	if p.Guests != nil {
		next.Guests = p.Guests
	}
	if p.Expenses != nil {
		next.Expenses = p.Expenses
	}
	if p.Tables != nil {
		next.Tables = p.Tables
	}
	return next
}

// DetailsPatch is a partial update of WeddingDetails; nil fields are left
// unchanged. Clearing the date is distinct from leaving it alone, so it
// gets an explicit flag rather than overloading the nil pointer.
type DetailsPatch struct {
	WeddingDate      *time.Time
	ClearWeddingDate bool
	PartnerName1     *string
	PartnerName2     *string
}

func MergeDetails(cur WeddingDetails, p DetailsPatch) WeddingDetails {
	next := cur
	if p.ClearWeddingDate {
		next.WeddingDate = nil
	} else if p.WeddingDate != nil {
		next.WeddingDate = p.WeddingDate
	}
	if p.PartnerName1 != nil {
		next.PartnerName1 = *p.PartnerName1
	}
	if p.PartnerName2 != nil {
		next.PartnerName2 = *p.PartnerName2
	}
	return next
}
