package models

// Entry is a single labelled secret held by an unlocked vault.
type Entry struct {
	Label string
	Value string
}
