// Package metainfo holds project information, overridden at build time
// with -ldflags "-X github.com/Milover/isbnref/internal/metainfo.Version=...".
package metainfo

import "fmt"

var (
	Project       string = "isbnref"
	Version       string = "dev"
	Url           string = "https://github.com/Milover/isbnref"
	HTTPUserAgent string = "_"
)

func init() {
	HTTPUserAgent = fmt.Sprintf(
		"%v/%v (%v)",
		Project,
		Version,
		Url,
	)
}
