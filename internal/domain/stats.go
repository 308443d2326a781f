package domain

// SideStats breaks guest numbers down by the partner side the invitation
// belongs to.
type SideStats struct {
	Invitations int `json:"invitations"`
	Confirmed   int `json:"confirmed"`
	People      int `json:"people"`
}

// GuestStats aggregates the guest list for the statistics screen.
// "Invitations" count guest records; "people" counts sum adults plus
// children across records.
type GuestStats struct {
	TotalInvitations     int `json:"totalInvitations"`
	ConfirmedInvitations int `json:"confirmedInvitations"`
	PendingInvitations   int `json:"pendingInvitations"`
	DeclinedInvitations  int `json:"declinedInvitations"`

	TotalPeople     int `json:"totalPeople"`
	ConfirmedPeople int `json:"confirmedPeople"`

	TotalAdults     int `json:"totalAdults"`
	ConfirmedAdults int `json:"confirmedAdults"`

	TotalChildren     int `json:"totalChildren"`
	ConfirmedChildren int `json:"confirmedChildren"`

	SpecialMenus          int `json:"specialMenus"`
	ConfirmedSpecialMenus int `json:"confirmedSpecialMenus"`

	Groom SideStats `json:"groom"`
	Bride SideStats `json:"bride"`

	InvitationsSent    int `json:"invitationsSent"`
	InvitationsNotSent int `json:"invitationsNotSent"`

	// Rates are percentages in [0, 100], zero when there is nothing to
	// divide by.
	ConfirmationRate       float64 `json:"confirmationRate"`
	PeopleConfirmationRate float64 `json:"peopleConfirmationRate"`
}

func Summarize(guests []Guest) GuestStats {
	var s GuestStats
	s.TotalInvitations = len(guests)

	for _, g := range guests {
		switch g.Status {
		case GuestStatusConfirmed:
			s.ConfirmedInvitations++
		case GuestStatusPending:
			s.PendingInvitations++
		case GuestStatusDeclined:
			s.DeclinedInvitations++
		}

		s.TotalPeople += g.NumberOfPeople + g.NumberOfChildren
		s.TotalAdults += g.NumberOfPeople
		s.TotalChildren += g.NumberOfChildren

		if g.Status == GuestStatusConfirmed {
			s.ConfirmedPeople += g.ConfirmedPeople + g.ConfirmedChildren
			s.ConfirmedAdults += g.ConfirmedPeople
			s.ConfirmedChildren += g.ConfirmedChildren
		}

		if g.SpecialMenuNotes != "" {
			s.SpecialMenus++
			if g.Status == GuestStatusConfirmed {
				s.ConfirmedSpecialMenus++
			}
		}

		side := &s.Groom
		if g.Side == SideBride {
			side = &s.Bride
		}
		side.Invitations++
		if g.Status == GuestStatusConfirmed {
			side.Confirmed++
			side.People += g.ConfirmedPeople + g.ConfirmedChildren
		}

		if g.InvitationSent {
			s.InvitationsSent++
		} else {
			s.InvitationsNotSent++
		}
	}

	if s.TotalInvitations > 0 {
		s.ConfirmationRate = float64(s.ConfirmedInvitations) / float64(s.TotalInvitations) * 100
	}
	if s.TotalPeople > 0 {
		s.PeopleConfirmationRate = float64(s.ConfirmedPeople) / float64(s.TotalPeople) * 100
	}
	return s
}

func TotalBudget(expenses []Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

func BudgetByCategory(expenses []Expense) map[string]float64 {
	out := make(map[string]float64)
	for _, e := range expenses {
		out[e.Category] += e.Amount
	}
	return out
}

// TableOccupancy reports how full a table is. Confirmed counts seated
// guests' confirmed people; Expected adds invited counts of seated guests
// that have not declined yet.
type TableOccupancy struct {
	Table     Table `json:"table"`
	Guests    int   `json:"guests"`
	Confirmed int   `json:"confirmed"`
	Expected  int   `json:"expected"`
}

func Occupancy(tables []Table, guests []Guest) []TableOccupancy {
	out := make([]TableOccupancy, len(tables))
	for i, t := range tables {
		occ := TableOccupancy{Table: t}
		for _, g := range guests {
			if g.TableID != t.ID {
				continue
			}
			occ.Guests++
			if g.Status == GuestStatusConfirmed {
				occ.Confirmed += g.ConfirmedPeople + g.ConfirmedChildren
				occ.Expected += g.ConfirmedPeople + g.ConfirmedChildren
			} else if g.Status == GuestStatusPending {
				occ.Expected += g.NumberOfPeople + g.NumberOfChildren
			}
		}
		out[i] = occ
	}
	return out
}
