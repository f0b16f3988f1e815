// Package numdb reads prefix range databases used to split numbers into
// their variable length components.
//
// A database is a plain text file. Lines starting with '#' are comments.
// Every other line holds a comma separated list of ranges, optionally
// followed by key="value" properties:
//
//	978 agency="International ISBN Agency"
//	 0-5,600-649,65-65,7-7,80-94,950-989,9900-9989,99900-99999
//	 0 agency="English language"
//	  00-19,200-227,2280-2289,229-368
//
// A range is either a single prefix or two prefixes of equal length joined
// by '-'. The indentation of a line is its depth in the tree: a line holds
// the ranges that may follow any range of the closest less indented line
// above it.
package numdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// DB is a parsed prefix range database. It is not modified after parsing
// and is safe for concurrent use.
type DB struct {
	root node
}

type node struct {
	ranges   []prefixRange
	props    map[string]string
	children []*node
}

type prefixRange struct {
	low, high string
}

func (r prefixRange) match(number string) bool {
	l := len(r.low)
	return len(number) >= l && r.low <= number[:l] && number[:l] <= r.high
}

// Part is a segment of a number with the merged properties of the ranges
// it matched.
type Part struct {
	Value string
	Props map[string]string
}

var propRe = regexp.MustCompile(`(\w+)="([^"]*)"`)

// Parse reads a database.
func Parse(r io.Reader) (*DB, error) {
	db := &DB{}
	stack := []*node{&db.root}

	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimRight(sc.Text(), " \t\r")
		text := strings.TrimLeft(line, " ")
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		depth := len(line) - len(text)
		if depth >= len(stack) {
			return nil, fmt.Errorf("line %d: unexpected indentation", lineno)
		}

		n, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		parent := stack[depth]
		parent.children = append(parent.children, n)
		stack = append(stack[:depth+1], n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return db, nil
}

func parseLine(text string) (*node, error) {
	field, rest, _ := strings.Cut(text, " ")
	n := &node{props: make(map[string]string)}
	for _, m := range propRe.FindAllStringSubmatch(rest, -1) {
		n.props[m[1]] = m[2]
	}
	for _, s := range strings.Split(field, ",") {
		low, high, ok := strings.Cut(s, "-")
		if !ok {
			high = low
		}
		if len(low) == 0 || len(low) != len(high) || !isDigits(low) || !isDigits(high) {
			return nil, fmt.Errorf("invalid range %q", s)
		}
		if low > high {
			return nil, fmt.Errorf("empty range %q", s)
		}
		n.ranges = append(n.ranges, prefixRange{low: low, high: high})
	}
	return n, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Read reads a database from a file.
func Read(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()
	db, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return db, nil
}

// Info splits the number into parts. At every level the shortest matching
// prefix is taken, and the properties and children of all ranges of that
// length are merged. Digits left over once no range matches form the last
// part.
func (db *DB) Info(number string) []Part {
	var parts []Part
	nodes := db.root.children
	for len(number) > 0 {
		part := number
		props := make(map[string]string)
		var next []*node
		for _, n := range nodes {
			var matched bool
			for _, r := range n.ranges {
				if !r.match(part) {
					continue
				}
				if l := len(r.low); len(part) > l {
					part = part[:l]
					props = make(map[string]string)
					next = nil
				}
				matched = true
			}
			if !matched {
				continue
			}
			for k, v := range n.props {
				props[k] = v
			}
			next = append(next, n.children...)
		}
		parts = append(parts, Part{Value: part, Props: props})
		number = number[len(part):]
		nodes = next
	}
	return parts
}

// Split splits the number into parts, see Info.
func (db *DB) Split(number string) []string {
	info := db.Info(number)
	parts := make([]string, len(info))
	for i, p := range info {
		parts[i] = p.Value
	}
	return parts
}
