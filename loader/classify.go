package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/swaggertools/oaserrors"
)

// Sourced pairs a parsed document with the reference it was read from.
// A nil Document marks a source that produced no document.
type Sourced struct {
	Source   string
	Document Document
}

// DocumentSet is the role-labeled result of acquisition. It is exactly one of
// *CurrentGeneration or *LegacyGeneration; callers type-switch on it.
type DocumentSet interface {
	// Version returns the declared Swagger version ("2.0", "1.2", ...).
	Version() string
	// Sources returns the references of every document in the set, root first.
	Sources() []string

	documentSet()
}

// CurrentGeneration is a self-contained Swagger 2.0 style document
// (the swaggerObject role).
type CurrentGeneration struct {
	// Source is the reference the document was read from
	Source string
	// Document is the swagger object
	Document Document
	// Ignored lists references supplied after the root; current-generation
	// documents never have children, so these are not part of the set.
	Ignored []string
}

// Version implements DocumentSet.
func (c *CurrentGeneration) Version() string {
	return VersionString(c.Document["swagger"])
}

// Sources implements DocumentSet.
func (c *CurrentGeneration) Sources() []string {
	return []string{c.Source}
}

func (*CurrentGeneration) documentSet() {}

// Declaration is one API declaration of a legacy document set.
type Declaration struct {
	// Index is the position of the declaration among all API declarations
	Index int
	// Source is the reference the declaration was read from
	Source string
	// Document is the API declaration
	Document Document
}

// LegacyGeneration is a Swagger 1.2 style document set: a resource listing
// plus its API declarations, in the order they were supplied.
type LegacyGeneration struct {
	// Source is the reference the resource listing was read from
	Source string
	// ResourceListing is the root document
	ResourceListing Document
	// Declarations are the API declarations in input order
	Declarations []Declaration
}

// Version implements DocumentSet.
func (l *LegacyGeneration) Version() string {
	return VersionString(l.ResourceListing["swaggerVersion"])
}

// Sources implements DocumentSet.
func (l *LegacyGeneration) Sources() []string {
	sources := make([]string, 0, len(l.Declarations)+1)
	sources = append(sources, l.Source)
	for _, d := range l.Declarations {
		sources = append(sources, d.Source)
	}
	return sources
}

// APIDeclarations returns the declaration documents in order.
func (l *LegacyGeneration) APIDeclarations() []Document {
	docs := make([]Document, len(l.Declarations))
	for i, d := range l.Declarations {
		docs[i] = d.Document
	}
	return docs
}

func (*LegacyGeneration) documentSet() {}

var (
	_ DocumentSet = (*CurrentGeneration)(nil)
	_ DocumentSet = (*LegacyGeneration)(nil)
)

// Classify assigns document roles to an ordered batch.
//
// The document at index 0 decides the generation: a "swagger" field makes it
// a CurrentGeneration (later documents are ignored), a "swaggerVersion" field
// makes it a LegacyGeneration whose later documents become its API
// declarations, in order. Anything else, including an absent document 0,
// fails with a *oaserrors.ClassifyError naming the document's source. Absent
// documents after index 0 are skipped.
func Classify(docs []Sourced) (DocumentSet, error) {
	if len(docs) == 0 {
		return nil, &oaserrors.ClassifyError{}
	}
	root := docs[0]
	if root.Document == nil {
		return nil, &oaserrors.ClassifyError{Source: root.Source}
	}

	rest := make([]Sourced, 0, len(docs)-1)
	for _, d := range docs[1:] {
		if d.Document != nil {
			rest = append(rest, d)
		}
	}

	if _, ok := root.Document["swagger"]; ok {
		set := &CurrentGeneration{Source: root.Source, Document: root.Document}
		for _, d := range rest {
			set.Ignored = append(set.Ignored, d.Source)
		}
		return set, nil
	}
	if _, ok := root.Document["swaggerVersion"]; ok {
		set := &LegacyGeneration{
			Source:          root.Source,
			ResourceListing: root.Document,
			Declarations:    make([]Declaration, 0, len(rest)),
		}
		for i, d := range rest {
			set.Declarations = append(set.Declarations, Declaration{Index: i, Source: d.Source, Document: d.Document})
		}
		return set, nil
	}
	return nil, &oaserrors.ClassifyError{Source: root.Source}
}

// VersionString renders a version field as a string. Numeric values from
// unquoted YAML or JSON numbers keep at least one decimal place, so 2 becomes
// "2.0" and 1.2 stays "1.2". Any other value is printed as written.
func VersionString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprint(t)
	}
}
