package isbn

import (
	"strings"
	"sync"

	"github.com/Milover/isbnref/internal/numdb"
)

// Database splits a numeric prefix into variable length segments.
type Database interface {
	Split(number string) []string
}

var (
	rangesMu sync.RWMutex
	ranges   Database
)

// Ranges returns the prefix range database used by Split and Format.
// Unless replaced with SetRanges, this is the embedded ISBN range table.
func Ranges() Database {
	rangesMu.RLock()
	defer rangesMu.RUnlock()
	if ranges == nil {
		return numdb.ISBN()
	}
	return ranges
}

// SetRanges replaces the prefix range database. A nil db restores the
// embedded table.
func SetRanges(db Database) {
	rangesMu.Lock()
	defer rangesMu.Unlock()
	ranges = db
}

// Parts holds the components of an ISBN.
type Parts struct {
	EAN        string `json:"ean"`
	Group      string `json:"group"`
	Registrant string `json:"registrant"`
	Item       string `json:"item"`
	Check      string `json:"check"`
}

// Slice returns the parts in order, empty ones included.
func (p Parts) Slice() []string {
	return []string{p.EAN, p.Group, p.Registrant, p.Item, p.Check}
}

// Join joins the non-empty parts with sep.
func (p Parts) Join(sep string) string {
	var b strings.Builder
	for _, s := range p.Slice() {
		if len(s) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s)
	}
	return b.String()
}

// Split validates the number and splits it into its EAN.UCC prefix, group,
// registrant, item and check digit. The EAN.UCC prefix is left empty for
// an ISBN-10 unless convert is set.
//
// Segments are assigned in the order the range database returns them; a
// number without a known registrant range leaves the later parts empty.
func Split(number string, convert bool) (Parts, error) {
	n, err := Validate(number, convert)
	if err != nil {
		return Parts{}, err
	}
	isbn10 := len(n) == 10
	if isbn10 {
		n = "978" + n
	}

	var p Parts
	fields := []*string{&p.EAN, &p.Group, &p.Registrant, &p.Item}
	for i, s := range Ranges().Split(n[:12]) {
		if i >= len(fields) {
			p.Item += s
			continue
		}
		*fields[i] = s
	}
	if isbn10 {
		p.EAN = ""
	}
	p.Check = n[12:]
	return p, nil
}

// Format validates the number and returns it with its parts joined by
// separator. An empty separator gives the compact form.
func Format(number, separator string, convert bool) (string, error) {
	p, err := Split(number, convert)
	if err != nil {
		return "", err
	}
	return p.Join(separator), nil
}
