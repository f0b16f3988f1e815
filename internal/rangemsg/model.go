package rangemsg

// Models of the International ISBN Agency range message.
//
// For more information about the particular fields see:
//	https://www.isbn-international.org/range_file_generation

const (
	// URL is the International ISBN Agency host.
	URL string = "www.isbn-international.org"
	// Export is the path to the XML range message export.
	Export string = "export_rangemessage.xml"
)

// Message holds the range message published by the agency.
type Message struct {
	Source   string  `xml:"MessageSource"`
	Serial   string  `xml:"MessageSerialNumber"`
	Date     string  `xml:"MessageDate"`
	Prefixes []Group `xml:"EAN.UCCPrefixes>EAN.UCC"`
	Groups   []Group `xml:"RegistrationGroups>Group"`
}

// Group is either an EAN.UCC prefix with the ranges of its registration
// groups, or a registration group with the ranges of its registrants.
type Group struct {
	Prefix string `xml:"Prefix"`
	Agency string `xml:"Agency"`
	Rules  []Rule `xml:"Rules>Rule"`
}

// Rule assigns a prefix length to a range of seven digit numbers.
// A Length of 0 marks the range as not defined.
type Rule struct {
	Range  string `xml:"Range"`
	Length int    `xml:"Length"`
}
