// Package manifest reads, transforms and writes IGV genome JSON manifests
// (https://igv.org/doc/igvjs/#Reference-Genome). Each step takes a Manifest
// and returns an updated copy; the input value is never modified.
package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
)

// JSON keys with dedicated fields. All other keys are kept verbatim.
const (
	keyFastaURL    = "fastaURL"
	keyIndexURL    = "indexURL"
	keyCytobandURL = "cytobandURL"
	keyAliasURL    = "aliasURL"
	keyTracks      = "tracks"
	keyURL         = "url"
	keyFormat      = "format"
)

// GFF3Format is the track format whose annotation files get patched.
const GFF3Format = "gff3"

// Manifest is an IGV genome description.
type Manifest struct {
	FastaURL    string
	IndexURL    string
	CytobandURL string
	AliasURL    string
	Tracks      []Track
	// Extra holds the keys without a dedicated field, such as "id" or
	// "name".
	Extra map[string]json.RawMessage
}

// Track is one annotation track of a Manifest.
type Track struct {
	URL      string
	IndexURL string
	Format   string
	Extra    map[string]json.RawMessage
}

// Clone returns a deep copy of m.
func (m Manifest) Clone() Manifest {
	c := m
	c.Extra = cloneExtra(m.Extra)
	if m.Tracks != nil {
		c.Tracks = make([]Track, len(m.Tracks))
		for i, t := range m.Tracks {
			t.Extra = cloneExtra(t.Extra)
			c.Tracks[i] = t
		}
	}
	return c
}

func cloneExtra(extra map[string]json.RawMessage) map[string]json.RawMessage {
	if extra == nil {
		return nil
	}
	c := make(map[string]json.RawMessage, len(extra))
	for k, v := range extra {
		c[k] = append(json.RawMessage(nil), v...)
	}
	return c
}

// popString removes key from fields and decodes it as a string. A missing key
// yields "".
func popString(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", nil
	}
	delete(fields, key)
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errors.E(errors.Invalid, fmt.Sprintf("key %q", key), err)
	}
	return s, nil
}

func putString(fields map[string]json.RawMessage, key, value string) error {
	if value == "" {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	fields[key] = raw
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Track) UnmarshalJSON(data []byte) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return errors.E(errors.Invalid, "track", err)
	}
	var err error
	if t.URL, err = popString(fields, keyURL); err != nil {
		return err
	}
	if t.IndexURL, err = popString(fields, keyIndexURL); err != nil {
		return err
	}
	if t.Format, err = popString(fields, keyFormat); err != nil {
		return err
	}
	t.Extra = fields
	return nil
}

// MarshalJSON implements json.Marshaler. Empty fields are omitted.
func (t Track) MarshalJSON() ([]byte, error) {
	fields := cloneExtra(t.Extra)
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	for _, kv := range [][2]string{{keyURL, t.URL}, {keyIndexURL, t.IndexURL}, {keyFormat, t.Format}} {
		if err := putString(fields, kv[0], kv[1]); err != nil {
			return nil, err
		}
	}
	return json.Marshal(fields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return errors.E(errors.Invalid, "manifest", err)
	}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{keyFastaURL, &m.FastaURL},
		{keyIndexURL, &m.IndexURL},
		{keyCytobandURL, &m.CytobandURL},
		{keyAliasURL, &m.AliasURL},
	} {
		s, err := popString(fields, f.key)
		if err != nil {
			return err
		}
		*f.dst = s
	}
	m.Tracks = nil
	if raw, ok := fields[keyTracks]; ok {
		delete(fields, keyTracks)
		if err := json.Unmarshal(raw, &m.Tracks); err != nil {
			return errors.E(errors.Invalid, "tracks", err)
		}
	}
	m.Extra = fields
	return nil
}

// MarshalJSON implements json.Marshaler. Empty fields are omitted; Go maps
// do not keep insertion order, so keys are written sorted.
func (m Manifest) MarshalJSON() ([]byte, error) {
	fields := cloneExtra(m.Extra)
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	for _, kv := range [][2]string{
		{keyFastaURL, m.FastaURL},
		{keyIndexURL, m.IndexURL},
		{keyCytobandURL, m.CytobandURL},
		{keyAliasURL, m.AliasURL},
	} {
		if err := putString(fields, kv[0], kv[1]); err != nil {
			return nil, err
		}
	}
	if m.Tracks != nil {
		raw, err := json.Marshal(m.Tracks)
		if err != nil {
			return nil, err
		}
		fields[keyTracks] = raw
	}
	return json.Marshal(fields)
}

// Read parses the manifest at path.
func Read(ctx context.Context, path string) (m Manifest, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return m, errors.E(errors.NotExist, path, err)
	}
	defer file.CloseAndReport(ctx, in, &err)
	data, err := ioutil.ReadAll(in.Reader(ctx))
	if err != nil {
		return m, errors.E("read", path, err)
	}
	if err = json.Unmarshal(data, &m); err != nil {
		return m, errors.E(path, err)
	}
	return m, nil
}

// Write stores m at path as indented JSON.
func Write(ctx context.Context, path string, m Manifest) (err error) {
	log.Printf("Writing genome JSON file...")
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return errors.E("marshal manifest", err)
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E("create", path, err)
	}
	defer file.CloseAndReport(ctx, out, &err)
	if _, err = out.Writer(ctx).Write(append(data, '\n')); err != nil {
		return errors.E("write", path, err)
	}
	return nil
}
