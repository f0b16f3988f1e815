package isbn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type splitTest struct {
	Name    string
	Input   string
	Convert bool
	Output  Parts
}

var splitTests = []splitTest{
	{
		Name:   "isbn13",
		Input:  "9780471117094",
		Output: Parts{"978", "0", "471", "11709", "4"},
	},
	{
		Name:   "isbn10",
		Input:  "1857982185",
		Output: Parts{"", "1", "85798", "218", "5"},
	},
	{
		Name:    "isbn10-convert",
		Input:   "1857982185",
		Convert: true,
		Output:  Parts{"978", "1", "85798", "218", "3"},
	},
	{
		Name:   "two-digit-group",
		Input:  "978-9024538270",
		Output: Parts{"978", "90", "245", "3827", "0"},
	},
	{
		Name:   "979",
		Input:  "9791090636071",
		Output: Parts{"979", "10", "90636", "07", "1"},
	},
	{
		Name:   "x-check",
		Input:  "0-201-61622-X",
		Output: Parts{"", "0", "201", "61622", "X"},
	},
	{
		Name:   "unknown-registrant",
		Input:  "9786000000004",
		Output: Parts{"978", "600", "000000", "", "4"},
	},
}

func TestSplit(t *testing.T) {
	for _, tt := range splitTests {
		t.Run(tt.Name, func(t *testing.T) {
			p, err := Split(tt.Input, tt.Convert)
			require.NoError(t, err)
			assert.Equal(t, tt.Output, p)
			// the parts always add up to the number
			assert.Equal(t, Compact(tt.Input, tt.Convert), strings.Join(p.Slice(), ""))
		})
	}
}

func TestSplitInvalid(t *testing.T) {
	_, err := Split("978-9024538271", false)
	assert.ErrorIs(t, err, ErrInvalidChecksum)
	_, err = Split("cake", false)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

type formatTest struct {
	Name      string
	Input     string
	Separator string
	Convert   bool
	Output    string
}

var formatTests = []formatTest{
	{
		Name:      "isbn13",
		Input:     "9780471117094",
		Separator: "-",
		Output:    "978-0-471-11709-4",
	},
	{
		Name:      "isbn10",
		Input:     "1857982185",
		Separator: "-",
		Output:    "1-85798-218-5",
	},
	{
		Name:      "isbn10-convert",
		Input:     "1857982185",
		Separator: "-",
		Convert:   true,
		Output:    "978-1-85798-218-3",
	},
	{
		Name:      "space",
		Input:     "978-3-540-40000-4",
		Separator: " ",
		Output:    "978 3 540 40000 4",
	},
	{
		Name:      "empty-separator",
		Input:     "978-0-471-11709-4",
		Separator: "",
		Output:    "9780471117094",
	},
	{
		Name:      "unknown-registrant",
		Input:     "9786000000004",
		Separator: "-",
		Output:    "978-600-000000-4",
	},
}

func TestFormat(t *testing.T) {
	for _, tt := range formatTests {
		t.Run(tt.Name, func(t *testing.T) {
			out, err := Format(tt.Input, tt.Separator, tt.Convert)
			require.NoError(t, err)
			assert.Equal(t, tt.Output, out)
		})
	}

	_, err := Format("978-0-471-11709-5", "-", false)
	assert.ErrorIs(t, err, ErrInvalidChecksum)
}

type fakeRanges [][]string

func (f fakeRanges) Split(number string) []string {
	for _, parts := range f {
		if strings.HasPrefix(number, strings.Join(parts, "")) {
			return parts
		}
	}
	return []string{number}
}

func TestSetRanges(t *testing.T) {
	SetRanges(fakeRanges{
		{"978", "0", "4711", "1709"},
		{"978", "18"},
		{"979", "1", "0", "9", "0636", "07"},
	})
	t.Cleanup(func() { SetRanges(nil) })

	p, err := Split("9780471117094", false)
	require.NoError(t, err)
	assert.Equal(t, Parts{"978", "0", "4711", "1709", "4"}, p)

	// fewer segments leave the later parts empty
	p, err = Split("9781857982183", false)
	require.NoError(t, err)
	assert.Equal(t, Parts{"978", "18", "", "", "3"}, p)

	// surplus segments are folded into the item
	p, err = Split("9791090636071", false)
	require.NoError(t, err)
	assert.Equal(t, Parts{"979", "1", "0", "9063607", "1"}, p)

	SetRanges(nil)
	s, err := Format("9780471117094", "-", false)
	require.NoError(t, err)
	assert.Equal(t, "978-0-471-11709-4", s)
}

func TestPartsJoin(t *testing.T) {
	p := Parts{"", "1", "85798", "218", "5"}
	assert.Equal(t, "1-85798-218-5", p.Join("-"))
	assert.Equal(t, "1857982185", p.Join(""))
	assert.Equal(t, "", Parts{}.Join("-"))
}
