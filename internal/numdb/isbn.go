package numdb

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed isbn.dat
var isbnData string

var (
	isbnOnce sync.Once
	isbnDB   *DB
)

// ISBN returns the embedded ISBN range database. It is parsed on first use.
func ISBN() *DB {
	isbnOnce.Do(func() {
		db, err := Parse(strings.NewReader(isbnData))
		if err != nil {
			panic("numdb: embedded isbn.dat: " + err.Error())
		}
		isbnDB = db
	})
	return isbnDB
}
