package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Milover/isbnref/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with flag state reset.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	outputFormat = output.Text
	compactConvert, validateConvert = false, false
	splitConvert, formatConvert = false, false
	formatSeparator = "-"
	cfg.RangesFile = ""
	cfg.LogLevel = "error"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

type cmdTest struct {
	Name   string
	Args   []string
	Output string
	Fail   bool
}

var cmdTests = []cmdTest{
	{
		Name:   "validate",
		Args:   []string{"validate", "978-9024538270"},
		Output: "9789024538270\n",
	},
	{
		Name:   "validate-checksum",
		Args:   []string{"validate", "978-9024538271"},
		Output: "978-9024538271: invalid checksum\n",
		Fail:   true,
	},
	{
		Name:   "validate-convert",
		Args:   []string{"validate", "--convert", "1-85798-218-5", "978-0-471-11709-4"},
		Output: "9781857982183\n9780471117094\n",
	},
	{
		Name:   "compact",
		Args:   []string{"compact", "1-85798-218-5"},
		Output: "1857982185\n",
	},
	{
		Name:   "compact-convert",
		Args:   []string{"compact", "--convert", "1-85798-218-5"},
		Output: "9781857982183\n",
	},
	{
		Name:   "type",
		Args:   []string{"type", "1-85798-218-5", "978-0-471-11709-4", "cake"},
		Output: "ISBN10\nISBN13\n\n",
	},
	{
		Name:   "to13",
		Args:   []string{"to13", "1-85798-218-5"},
		Output: "978-1-85798-218-3\n",
	},
	{
		Name:   "to10",
		Args:   []string{"to10", "978-1-85798-218-3"},
		Output: "1-85798-218-5\n",
	},
	{
		Name:   "to10-979",
		Args:   []string{"to10", "979-10-90636-07-1"},
		Output: "979-10-90636-07-1: invalid component\n",
		Fail:   true,
	},
	{
		Name:   "format-isbn13",
		Args:   []string{"format", "9780471117094"},
		Output: "978-0-471-11709-4\n",
	},
	{
		Name:   "format-isbn10",
		Args:   []string{"format", "1857982185"},
		Output: "1-85798-218-5\n",
	},
	{
		Name:   "format-separator",
		Args:   []string{"format", "-s", " ", "--convert", "1857982185"},
		Output: "978 1 85798 218 3\n",
	},
	{
		Name:   "split",
		Args:   []string{"split", "1857982185", "9780471117094"},
		Output: "\t1\t85798\t218\t5\n978\t0\t471\t11709\t4\n",
	},
	{
		Name:   "split-invalid",
		Args:   []string{"split", "1857982185", "cake"},
		Output: "\t1\t85798\t218\t5\ncake: invalid format\n",
		Fail:   true,
	},
	{
		Name:   "to13-sbn",
		Args:   []string{"to13", "306 40615 2"},
		Output: "978 0306 40615 7\n",
	},
	{
		Name:   "to10-split-prefix",
		Args:   []string{"to10", "97-8-1-85798-218-3"},
		Output: "1-85798-218-5\n",
	},
	{
		Name:   "ranges-info",
		Args:   []string{"ranges", "info", "978-0-471-11709-4", "978-9024538270"},
		Output: "978-0-471-11709\tEnglish language\n978-90-245-3827\tNetherlands\n",
	},
}

func TestCommands(t *testing.T) {
	for _, tt := range cmdTests {
		t.Run(tt.Name, func(t *testing.T) {
			out, err := run(t, "", tt.Args...)
			if tt.Fail {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.Output, out)
		})
	}
}

func TestStdin(t *testing.T) {
	out, err := run(t, "1-85798-218-5\n\n  978-0-471-11709-4  \n", "validate")
	require.NoError(t, err)
	assert.Equal(t, "1857982185\n9780471117094\n", out)
}

func TestOutputJSON(t *testing.T) {
	out, err := run(t, "", "-o", "json", "validate", "1-85798-218-5", "cake")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 numbers failed")
	assert.Contains(t, out, `"result": "1857982185"`)
	assert.Contains(t, out, `"kind": "format"`)

	_, err = run(t, "", "-o", "xml", "validate", "1-85798-218-5")
	assert.Error(t, err)
}

func TestRangesFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isbn.dat")
	require.NoError(t, os.WriteFile(path, []byte("978\n 0-9\n  00-99\n"), 0o644))

	out, err := run(t, "", "--ranges", path, "format", "9780471117094")
	require.NoError(t, err)
	assert.Equal(t, "978-0-47-111709-4\n", out)

	// the embedded database is restored
	out, err = run(t, "", "format", "9780471117094")
	require.NoError(t, err)
	assert.Equal(t, "978-0-471-11709-4\n", out)

	_, err = run(t, "", "--ranges", filepath.Join(t.TempDir(), "missing.dat"), "format", "9780471117094")
	assert.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "validate", "1857982185")
	assert.Error(t, err)
}

const rangeMessage = `<?xml version="1.0" encoding="UTF-8"?>
<ISBNRangeMessage>
  <MessageSource>International ISBN Agency</MessageSource>
  <MessageSerialNumber>1</MessageSerialNumber>
  <MessageDate>Mon, 7 Sep 2026 10:12:44 BST</MessageDate>
  <EAN.UCCPrefixes>
    <EAN.UCC>
      <Prefix>978</Prefix>
      <Agency>International ISBN Agency</Agency>
      <Rules>
        <Rule><Range>0000000-5999999</Range><Length>1</Length></Rule>
      </Rules>
    </EAN.UCC>
  </EAN.UCCPrefixes>
  <RegistrationGroups>
    <Group>
      <Prefix>978-0</Prefix>
      <Agency>English language</Agency>
      <Rules>
        <Rule><Range>2290000-3689999</Range><Length>3</Length></Rule>
      </Rules>
    </Group>
  </RegistrationGroups>
</ISBNRangeMessage>
`

func TestRangesUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rangeMessage))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "isbn.dat")
	_, err := run(t, "", "ranges", "update", "--url", srv.URL+"/r.xml", "--out", path)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), " 0 agency=\"English language\"\n  229-368\n")

	out, err := run(t, "", "--ranges", path, "format", "978-0-306-40615-7")
	require.NoError(t, err)
	assert.Equal(t, "978-0-306-40615-7\n", out)

	out, err = run(t, "", "ranges", "update", "--url", srv.URL+"/r.xml", "--out", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# generated from RangeMessage.xml"))
}
