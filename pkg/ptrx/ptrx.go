package ptrx

import "time"

// String returns a pointer to the given string
func String(s string) *string {
	return &s
}

// Time returns a pointer to the given time
func Time(t time.Time) *time.Time {
	return &t
}

// Bool returns a pointer to the given bool
func Bool(b bool) *bool {
	return &b
}
