package horizon

import "encoding/json"

// Page is one page of records from a paginated endpoint.
//
// On the wire a page is a HAL document with `_links` and
// `_embedded.records`; Page flattens that nesting. Pages serialize back
// to the same JSON they were decoded from, so responses can be passed
// through middleware services unchanged.
type Page[T any] struct {
	// Links are the self/next/prev navigation links, if present.
	Links *PageLinks

	// Records are the page records, in server order.
	Records []T
}

// NextCursor returns the paging token of the last record on the page,
// extracted by fn, or "" for an empty page. Use it to resume a paginated
// walk or to seed a stream subscription.
func (p Page[T]) NextCursor(fn func(T) string) string {
	if len(p.Records) == 0 {
		return ""
	}
	return fn(p.Records[len(p.Records)-1])
}

type embeddedPage[T any] struct {
	Links    *PageLinks         `json:"_links,omitempty"`
	Embedded embeddedRecords[T] `json:"_embedded"`
}

type embeddedRecords[T any] struct {
	Records []T `json:"records"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	var inner embeddedPage[T]
	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}
	p.Links = inner.Links
	p.Records = inner.Embedded.Records
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	inner := embeddedPage[T]{
		Links:    p.Links,
		Embedded: embeddedRecords[T]{Records: p.Records},
	}
	if inner.Embedded.Records == nil {
		inner.Embedded.Records = []T{}
	}
	return json.Marshal(inner)
}
