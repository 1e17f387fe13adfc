package models

// Case is one scenario case parsed from a Markdown file.
type Case struct {
	Name                string
	Simple              bool
	OriginalEnumeration string
	Version             string
}

// Scenario is a Markdown file with at least one case.
type Scenario struct {
	Path  string
	Cases []Case
}
