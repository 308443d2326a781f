package domain

// Pure list transformations backing the planner operations. Every
// function returns fresh slices and leaves its inputs untouched.
// Mutations targeting an id that does not exist are silent no-ops.

func AppendTask(tasks []Task, t Task) []Task {
	out := make([]Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, t)
}

func ToggleTask(tasks []Task, id string) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		if t.ID == id {
			t.Completed = !t.Completed
		}
		out[i] = t
	}
	return out
}

func AppendGuest(guests []Guest, g Guest) []Guest {
	out := make([]Guest, 0, len(guests)+1)
	out = append(out, guests...)
	return append(out, g)
}

// SetGuestStatus applies the status transition rules: explicit confirmed
// counts always win; otherwise confirming copies the invited counts and
// any other status resets them to zero. Declining frees the guest's seat.
func SetGuestStatus(guests []Guest, id string, status GuestStatus, confirmedPeople, confirmedChildren *int) []Guest {
	out := make([]Guest, len(guests))
	for i, g := range guests {
		if g.ID == id {
			g.Status = status

			switch {
			case confirmedPeople != nil:
				g.ConfirmedPeople = *confirmedPeople
			case status == GuestStatusConfirmed:
				g.ConfirmedPeople = g.NumberOfPeople
			default:
				g.ConfirmedPeople = 0
			}

			switch {
			case confirmedChildren != nil:
				g.ConfirmedChildren = *confirmedChildren
			case status == GuestStatusConfirmed:
				g.ConfirmedChildren = g.NumberOfChildren
			default:
				g.ConfirmedChildren = 0
			}

			if status == GuestStatusDeclined {
				g.TableID = ""
			}
		}
		out[i] = g
	}
	return out
}

func UpdateGuestInfo(guests []Guest, id, name string, side GuestSide, numPeople, numChildren int, notes string) []Guest {
	out := make([]Guest, len(guests))
	for i, g := range guests {
		if g.ID == id {
			g.Name = name
			g.Side = side
			g.NumberOfPeople = numPeople
			g.NumberOfChildren = numChildren
			g.SpecialMenuNotes = notes
		}
		out[i] = g
	}
	return out
}

func RemoveGuest(guests []Guest, id string) []Guest {
	out := make([]Guest, 0, len(guests))
	for _, g := range guests {
		if g.ID != id {
			out = append(out, g)
		}
	}
	return out
}

func ToggleInvitationSent(guests []Guest, id string) []Guest {
	out := make([]Guest, len(guests))
	for i, g := range guests {
		if g.ID == id {
			g.InvitationSent = !g.InvitationSent
		}
		out[i] = g
	}
	return out
}

// AssignGuestTable seats the guest at tableID; an empty tableID clears
// the assignment.
func AssignGuestTable(guests []Guest, guestID, tableID string) []Guest {
	out := make([]Guest, len(guests))
	for i, g := range guests {
		if g.ID == guestID {
			g.TableID = tableID
		}
		out[i] = g
	}
	return out
}

func AppendExpense(expenses []Expense, e Expense) []Expense {
	out := make([]Expense, 0, len(expenses)+1)
	out = append(out, expenses...)
	return append(out, e)
}

func AppendTable(tables []Table, t Table) []Table {
	out := make([]Table, 0, len(tables)+1)
	out = append(out, tables...)
	return append(out, t)
}

// RemoveTable drops the table and clears the seat assignment of every
// guest that referenced it.
func RemoveTable(tables []Table, guests []Guest, id string) ([]Table, []Guest) {
	nextTables := make([]Table, 0, len(tables))
	for _, t := range tables {
		if t.ID != id {
			nextTables = append(nextTables, t)
		}
	}

	nextGuests := make([]Guest, len(guests))
	for i, g := range guests {
		if g.TableID == id {
			g.TableID = ""
		}
		nextGuests[i] = g
	}
	return nextTables, nextGuests
}
