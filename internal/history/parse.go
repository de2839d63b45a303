package history

import (
	"encoding/json"
	"strings"
)

// Parse extracts the usernames from a username-history response body.
// Any structural problem rejects the whole body; no partial list is returned.
func Parse(body string) (Usernames, error) {
	page, err := ParsePage(body)
	if err != nil {
		return nil, err
	}
	return page.Usernames, nil
}

// ParsePage is Parse plus the envelope's pagination cursors.
func ParsePage(body string) (Page, error) {
	body = strings.TrimPrefix(body, "\ufeff")

	var decoded any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return Page{}, parseError("decode body", &jsonError{cause: err})
	}

	envelope, ok := decoded.(map[string]any)
	if !ok {
		return Page{}, parseError("read envelope", ErrMissingDataField)
	}
	data, ok := envelope["data"]
	if !ok {
		return Page{}, parseError("read envelope", ErrMissingDataField)
	}

	items, ok := data.([]any)
	if !ok {
		return Page{}, parseError("read data", ErrDataNotArray)
	}

	names := make(Usernames, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return Page{}, parseError("read data", &EntryError{Index: i})
		}
		name, ok := entry["name"].(string)
		if !ok {
			return Page{}, parseError("read data", &EntryError{Index: i})
		}
		names = append(names, name)
	}

	return Page{
		Usernames:  names,
		NextCursor: cursor(envelope, "nextPageCursor"),
	}, nil
}

func cursor(envelope map[string]any, key string) string {
	s, _ := envelope[key].(string)
	return s
}

// jsonError keeps the decoder's message while matching ErrInvalidJSON.
type jsonError struct {
	cause error
}

func (e *jsonError) Error() string {
	return ErrInvalidJSON.Error() + ": " + e.cause.Error()
}

func (e *jsonError) Unwrap() []error {
	return []error{ErrInvalidJSON, e.cause}
}
