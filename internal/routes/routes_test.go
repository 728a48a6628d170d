package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownPaths(t *testing.T) {
	table := NewTable()

	admin := table.Lookup("/admin")
	assert.Equal(t, "Hello from Admin Page!", admin.Body)
	assert.Equal(t, ContentTypeText, admin.ContentType)

	users := table.Lookup("/users")
	assert.Equal(t, ContentTypeJSON, users.ContentType)

	all := table.Lookup("/api/all-users")
	assert.Equal(t, ContentTypeJSON, all.ContentType)
}

func TestLookupFallsBackToDefault(t *testing.T) {
	table := NewTable()

	for _, path := range []string{"/nope", "", "/admin/", "/Admin", "/users/1"} {
		entry := table.Lookup(path)
		assert.Equal(t, table.Default(), entry, "path %q should fall through", path)
	}

	assert.Equal(t, "Hello, World!", table.Default().Body)
	assert.Equal(t, ContentTypeText, table.Default().ContentType)
}

// The table is an ordered list; on accidental duplicates the first entry
// wins.
func TestLookupFirstMatchWinsOnDuplicates(t *testing.T) {
	table := &Table{
		entries: []Entry{
			{Path: "/dup", Body: "first", ContentType: ContentTypeText},
			{Path: "/dup", Body: "second", ContentType: ContentTypeText},
		},
		fallback: Entry{Body: "fallback", ContentType: ContentTypeText},
	}

	got := table.Lookup("/dup")
	assert.Equal(t, "first", got.Body)
}

func TestLookupIsCaseSensitive(t *testing.T) {
	table := NewTable()
	assert.Equal(t, table.Default(), table.Lookup("/USERS"))
}

func TestUserListingBodies(t *testing.T) {
	table := NewTable()

	var users []User
	require.NoError(t, json.UnmarshalFromString(table.Lookup("/users").Body, &users))
	require.Len(t, users, 2)
	assert.Equal(t, User{ID: 1, Name: "Alice"}, users[0])
	assert.Equal(t, User{ID: 2, Name: "Bob"}, users[1])

	var all []User
	require.NoError(t, json.UnmarshalFromString(table.Lookup("/api/all-users").Body, &all))
	require.Len(t, all, 9)
	assert.Equal(t, "Alice", all[0].Name)
	assert.Equal(t, "brendon", all[8].Name)
}
