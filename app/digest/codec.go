package digest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
)

type plainDigest Digest

func (d *Digest) UnmarshalJSON(data []byte) error {
	var decoded plainDigest
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*d = Digest(decoded)
	d.raw = bytes.Clone(data)

	return nil
}

func (d Digest) MarshalJSON() ([]byte, error) {
	current := plainDigest(d)
	current.raw = nil

	if d.raw != nil {
		var original plainDigest
		if err := json.Unmarshal(d.raw, &original); err == nil && reflect.DeepEqual(original, current) {
			return d.raw, nil
		}
	}

	return marshalUnescaped(current)
}

func (c *Collection) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	c.Posts = nil
	if posts, ok := fields["posts"]; ok {
		if err := json.Unmarshal(posts, &c.Posts); err != nil {
			return fmt.Errorf("posts: %w", err)
		}
		delete(fields, "posts")
	}

	c.extra = nil
	if len(fields) > 0 {
		c.extra = fields
	}

	return nil
}

// MarshalJSON writes posts first, then any preserved keys in sorted order.
func (c Collection) MarshalJSON() ([]byte, error) {
	posts := c.Posts
	if posts == nil {
		posts = []Digest{}
	}

	encoded, err := marshalUnescaped(posts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`{"posts":`)
	buf.Write(encoded)

	for _, key := range slices.Sorted(maps.Keys(c.extra)) {
		name, err := marshalUnescaped(key)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(c.extra[key])
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// marshalUnescaped is json.Marshal without the HTML escaping of &, < and >.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
