// Package rangemsg converts the ISBN range message published by the
// International ISBN Agency into the prefix range database format read by
// package numdb.
package rangemsg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Decode reads a range message.
func Decode(r io.Reader) (*Message, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var msg Message
	if err := d.Decode(&msg); err != nil {
		return nil, fmt.Errorf("decode range message: %w", err)
	}
	if len(msg.Prefixes) == 0 {
		return nil, fmt.Errorf("decode range message: no EAN.UCC prefixes")
	}
	return &msg, nil
}

// Ranges returns the defined ranges of the group, each truncated to the
// length of its rule.
func (g Group) Ranges() ([]string, error) {
	var ranges []string
	for _, r := range g.Rules {
		if r.Length == 0 {
			continue
		}
		low, high, ok := strings.Cut(strings.TrimSpace(r.Range), "-")
		if !ok || r.Length > len(low) || r.Length > len(high) {
			return nil, fmt.Errorf("%v: invalid rule %q/%d", g.Prefix, r.Range, r.Length)
		}
		ranges = append(ranges, low[:r.Length]+"-"+high[:r.Length])
	}
	return ranges, nil
}

// WriteDB writes the message as a prefix range database. source is
// recorded in the header as the download location.
func (m *Message) WriteDB(w io.Writer, source string) error {
	var b strings.Builder

	b.WriteString("# generated from RangeMessage.xml, downloaded from\n")
	fmt.Fprintf(&b, "# %v\n", source)
	fmt.Fprintf(&b, "# file serial %v\n", strings.TrimSpace(m.Serial))
	fmt.Fprintf(&b, "# file date %v\n", strings.TrimSpace(m.Date))

	for _, p := range m.Prefixes {
		prefix := strings.TrimSpace(p.Prefix)
		writeLine(&b, 0, prefix, p.Agency)
		ranges, err := p.Ranges()
		if err != nil {
			return err
		}
		if len(ranges) > 0 {
			writeLine(&b, 1, strings.Join(ranges, ","), "")
		}

		for _, g := range m.Groups {
			ean, group, ok := strings.Cut(strings.TrimSpace(g.Prefix), "-")
			if !ok || ean != prefix {
				continue
			}
			writeLine(&b, 1, group, g.Agency)
			ranges, err := g.Ranges()
			if err != nil {
				return err
			}
			if len(ranges) > 0 {
				writeLine(&b, 2, strings.Join(ranges, ","), "")
			}
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func writeLine(b *strings.Builder, depth int, ranges, agency string) {
	b.WriteString(strings.Repeat(" ", depth))
	b.WriteString(ranges)
	if agency = strings.TrimSpace(agency); len(agency) > 0 {
		fmt.Fprintf(b, " agency=\"%v\"", strings.ReplaceAll(agency, "\"", "'"))
	}
	b.WriteByte('\n')
}
