package genomefile

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Property is one key=value line of property.txt.
type Property struct {
	Key, Value string
}

// Properties is the ordered content of property.txt.
type Properties []Property

// ReadProperties parses key=value lines. The key ends at the first '='; the
// value keeps any further '=' and is trimmed. Lines with an empty key are
// dropped. A repeated key keeps its first position and its last value.
func ReadProperties(r io.Reader) (Properties, error) {
	var props Properties
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		key, value := line, ""
		if i := strings.IndexByte(line, '='); i >= 0 {
			key, value = line[:i], line[i+1:]
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		props = props.Set(key, strings.TrimSpace(value))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read properties")
	}
	return props, nil
}

// Write emits one key=value line per property.
func (p Properties) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, prop := range p {
		bw.WriteString(prop.Key)   // nolint: errcheck
		bw.WriteByte('=')          // nolint: errcheck
		bw.WriteString(prop.Value) // nolint: errcheck
		bw.WriteByte('\n')         // nolint: errcheck
	}
	return errors.Wrap(bw.Flush(), "write properties")
}

// Get returns the value of key.
func (p Properties) Get(key string) (string, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return "", false
}

// Set overwrites key in place, or appends it.
func (p Properties) Set(key, value string) Properties {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Property{key, value})
}

// AppendSuffix appends idSuffix to the "id" property and nameSuffix to the
// "name" property, so that the repacked genome does not clash with the one
// it was made from.
func (p Properties) AppendSuffix(idSuffix, nameSuffix string) (Properties, error) {
	for _, kv := range [][2]string{{IDKey, idSuffix}, {NameKey, nameSuffix}} {
		v, ok := p.Get(kv[0])
		if !ok {
			return p, errors.Errorf("%s: no %q property", PropertiesFile, kv[0])
		}
		p = p.Set(kv[0], v+kv[1])
	}
	return p, nil
}
