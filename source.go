package definer

// ResultKind identifies which payload of a Result a source fills.
type ResultKind int

const (
	// ResultDefinitions carries Overview and Definitions.
	ResultDefinitions ResultKind = iota
	// ResultSenseGroups carries SenseGroups.
	ResultSenseGroups
	// ResultWiki carries Definitions and Origins.
	ResultWiki
	// ResultOrigins carries Origins.
	ResultOrigins
	// ResultImages carries Images.
	ResultImages
)

// String returns the kind name used in logs and metrics.
func (k ResultKind) String() string {
	switch k {
	case ResultDefinitions:
		return "definitions"
	case ResultSenseGroups:
		return "sense_groups"
	case ResultWiki:
		return "wiki"
	case ResultOrigins:
		return "origins"
	case ResultImages:
		return "images"
	default:
		return "unknown"
	}
}

// Result is the partial contribution of one source to a Word.
type Result struct {
	Kind ResultKind

	Overview    []string
	Definitions []Definition
	SenseGroups [][]Definition
	Origins     []Origin
	Images      []string
}

// IsEmpty reports whether the result contributes nothing.
func (r *Result) IsEmpty() bool {
	if r == nil {
		return true
	}
	return len(r.Overview) == 0 &&
		len(r.Definitions) == 0 &&
		len(r.SenseGroups) == 0 &&
		len(r.Origins) == 0 &&
		len(r.Images) == 0
}

// Source maps one external site's document for a word into a Result.
//
// Absence is reported through errors: ENOTFOUND when the site has no entry
// for the word (including echoed-word mismatches), EMARKUP when an expected
// anchor element is missing, and ERESTRICTED when the word is refused before
// any fetch.
type Source interface {
	// Name returns the identifier recorded in Word.Sources.
	Name() string

	// URL returns the document URL for word.
	// An error means the source declines the word and nothing is fetched.
	URL(word string) (string, error)

	// Extract parses the fetched document for word.
	Extract(word, html string) (*Result, error)
}

// Sanitizer scrubs markup in an assembled word before it is stored.
type Sanitizer interface {
	SanitizeWord(w *Word)
}
