// Package routes holds the static mapping from request path to canned
// content. The table is built once at startup and never mutated.
package routes

import (
	jsoniter "github.com/json-iterator/go"
)

const (
	ContentTypeText = "text/plain"
	ContentTypeJSON = "application/json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// User is one entry of the canned user listings.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Entry is one immutable route: an exact path and the body and content type
// served for it.
type Entry struct {
	Path        string
	Body        string
	ContentType string
}

// Table is an ordered route list plus a designated fallback entry. Lookup is
// a linear scan; the table is small and first match wins.
type Table struct {
	entries  []Entry
	fallback Entry
}

var allUsers = []User{
	{ID: 1, Name: "Alice"},
	{ID: 2, Name: "Bob"},
	{ID: 3, Name: "john"},
	{ID: 4, Name: "rehan"},
	{ID: 5, Name: "shaikh"},
	{ID: 6, Name: "vishal"},
	{ID: 7, Name: "aashutosh"},
	{ID: 8, Name: "Unais"},
	{ID: 9, Name: "brendon"},
}

// NewTable builds the fixed route table. The user-listing bodies are rendered
// here, once, so every later lookup is pure data access.
func NewTable() *Table {
	return &Table{
		entries: []Entry{
			{Path: "/admin", Body: "Hello from Admin Page!", ContentType: ContentTypeText},
			{Path: "/users", Body: mustRender(allUsers[:2]), ContentType: ContentTypeJSON},
			{Path: "/api/all-users", Body: mustRender(allUsers), ContentType: ContentTypeJSON},
		},
		fallback: Entry{Body: "Hello, World!", ContentType: ContentTypeText},
	}
}

// Lookup returns the first entry whose path equals path byte-exactly, or the
// fallback entry when none matches. It has no failure mode.
func (t *Table) Lookup(path string) Entry {
	for _, e := range t.entries {
		if e.Path == path {
			return e
		}
	}
	return t.fallback
}

// Default returns the fallback entry served for unknown or unparseable paths.
func (t *Table) Default() Entry {
	return t.fallback
}

func mustRender(users []User) string {
	b, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		// A fixed slice of plain structs cannot fail to marshal.
		panic(err)
	}
	return string(b)
}
