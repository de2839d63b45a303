// Package history holds the username-history data model, its response parser
// and the error taxonomy shared by every stage of a lookup.
package history

import "strconv"

// UserID is the numeric account key used by the users API.
type UserID uint64

func (id UserID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Usernames lists previous names in the order the API returned them.
type Usernames []string

// Entry is one element of the username-history data array.
type Entry struct {
	Name string `json:"name"`
}

// Page is a parsed username-history response. NextCursor is empty when the API sent null.
type Page struct {
	Usernames  Usernames
	NextCursor string
}

// HasMore reports whether the API signalled further pages that were not fetched.
func (p Page) HasMore() bool {
	return p.NextCursor != ""
}
