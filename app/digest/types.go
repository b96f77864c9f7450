package digest

import "encoding/json"

// Item is one curated entry of a digest.
type Item struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// Digest is the roundup produced by a single run.
type Digest struct {
	Date     string   `json:"date"` // YYYY-MM-DD, UTC
	Subject  string   `json:"subject"`
	Intro    string   `json:"intro"`
	Items    []Item   `json:"items"`
	Metrics  []string `json:"metrics"`
	Takeaway string   `json:"takeaway"`

	// raw holds the document this digest was decoded from, unknown keys
	// included. It is written back as long as the fields are unchanged.
	raw json.RawMessage
}

// Collection is the persisted history of digests, newest first. Top-level
// keys other than posts survive a load and save.
type Collection struct {
	Posts []Digest `json:"posts"`

	extra map[string]json.RawMessage
}

// Prepend inserts d ahead of every existing digest.
func (c *Collection) Prepend(d Digest) {
	c.Posts = append([]Digest{d}, c.Posts...)
}

// Latest returns the most recently inserted digest.
func (c *Collection) Latest() (Digest, bool) {
	if len(c.Posts) == 0 {
		return Digest{}, false
	}
	return c.Posts[0], true
}
