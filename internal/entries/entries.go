// Package entries decodes the wheel's labels from a URL query or a text file.
package entries

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/iburimskiy/prize-wheel/internal/wheel"
)

// FromQuery reads labels from a URL query such as "entry=A&entry=B" or
// "entries=A,B". A leading "?" is allowed. Repeated "entry" keys come first,
// then the comma-separated "entries" list, in order.
func FromQuery(raw string) ([]wheel.Entry, error) {
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return nil, nil
	}
	q, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("parse entries query: %w", err)
	}

	var out []wheel.Entry
	for _, label := range q["entry"] {
		out = appendLabel(out, label)
	}
	for _, list := range q["entries"] {
		for _, label := range strings.Split(list, ",") {
			out = appendLabel(out, label)
		}
	}
	return out, nil
}

// Read takes one label per line. Blank lines and lines starting with '#'
// are skipped.
func Read(r io.Reader) ([]wheel.Entry, error) {
	var out []wheel.Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		out = appendLabel(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return out, nil
}

// Load reads the entries file at path.
func Load(path string) ([]wheel.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func appendLabel(out []wheel.Entry, label string) []wheel.Entry {
	label = strings.TrimSpace(label)
	if label == "" {
		return out
	}
	return append(out, wheel.Entry{Label: label})
}
