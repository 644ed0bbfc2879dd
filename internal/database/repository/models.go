package repository

import "time"

// View is one display of a country's detail screen.
type View struct {
	ID        string
	CountryID string
	Locale    string
	ViewedAt  time.Time
}

// CountryCount is a per-country view total.
type CountryCount struct {
	CountryID string
	Count     int
}
