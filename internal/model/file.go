package model

import "time"

// FileEntry is a regular file found directly under the source folder.
type FileEntry struct {
	Path    string
	Name    string
	Ext     string // lower-cased, leading dot kept; "" when the name has no suffix
	Size    int64
	ModTime time.Time
}

// PlannedAction is a single move computed by the organizer.
type PlannedAction struct {
	Source      string
	Destination string
	Category    string
}
