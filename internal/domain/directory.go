package domain

import "fmt"

// DirectoryEntry is the contact record for a unit, sourced from the resident
// registry. Read-only reference data; never written by this service.
type DirectoryEntry struct {
	UnitID int
	Name   string
	Email  string
	Phone  string
}

// PlaceholderEntry stands in for units missing from the directory so that
// consolidated reports always carry contact fields.
func PlaceholderEntry(unitID int) DirectoryEntry {
	return DirectoryEntry{
		UnitID: unitID,
		Name:   fmt.Sprintf("N/A (unit %d)", unitID),
		Email:  "N/A",
		Phone:  "N/A",
	}
}
