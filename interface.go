package svgdom

import (
	"fmt"

	"github.com/lestrrat-go/svgdom/css"
	"github.com/lestrrat-go/svgdom/internal/orderedmap"
	"github.com/lestrrat-go/svgdom/schema"
	"github.com/lestrrat-go/svgdom/selector"
	"github.com/lestrrat-go/svgdom/value"
)

// Handle designates a node slot in a Document. A Handle stays valid
// until the node it designates is removed; the zero Handle is never
// valid.
type Handle struct {
	index uint32
	gen   uint32
}

// InvalidHandle is the zero Handle.
var InvalidHandle = Handle{}

func (h Handle) IsValid() bool {
	return h.gen != 0
}

func (h Handle) String() string {
	if !h.IsValid() {
		return "#invalid"
	}
	return fmt.Sprintf("#%d.%d", h.index, h.gen)
}

type NodeKind int

const (
	ElementNode NodeKind = iota + 1
	TextNode
	CommentNode
)

func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	}
	return "invalid"
}

// Provenance records where a resolved attribute value came from.
type Provenance int

const (
	Presentation Provenance = iota
	StylesheetRule
	InlineStyle
	Inherited
	Default
)

func (p Provenance) String() string {
	switch p {
	case Presentation:
		return "presentation"
	case StylesheetRule:
		return "stylesheet"
	case InlineStyle:
		return "inline"
	case Inherited:
		return "inherited"
	case Default:
		return "default"
	}
	return "unknown"
}

// Specified reports whether the value was set on the node itself.
func (p Provenance) Specified() bool {
	return p == Presentation || p == StylesheetRule || p == InlineStyle
}

// Attribute describes one attribute value of a node. Attributes are
// never modified once stored: changing a value stores a new Attribute.
type Attribute struct {
	Name       string
	Raw        string
	Value      value.Value
	Provenance Provenance
	// Specificity of the winning rule, for StylesheetRule values.
	Specificity selector.Specificity
	// From is the node the value was specified on, for Inherited values.
	From      Handle
	Important bool
	// Resolved is set on values produced by the style cascade.
	Resolved bool
	// Hidden attributes are kept but not serialized by default.
	Hidden bool
}

// BrokenReason tells why a reference could not be resolved.
type BrokenReason int

const (
	NotBroken BrokenReason = iota
	CycleDetected
	DanglingReference
)

func (r BrokenReason) String() string {
	switch r {
	case CycleDetected:
		return "cycle detected"
	case DanglingReference:
		return "dangling reference"
	}
	return "ok"
}

// ReferenceEdge is one id reference from an attribute to a node.
type ReferenceEdge struct {
	Source    Handle
	Attribute string
	TargetID  string
	// Target is InvalidHandle for dangling references.
	Target Handle
	Kind   schema.LinkKind
	Broken BrokenReason
}

func (e ReferenceEdge) IsBroken() bool {
	return e.Broken != NotBroken
}

// TemplatePrecedence decides which side wins when a template host and
// the instantiated template root both set an attribute.
type TemplatePrecedence int

const (
	ReferencingWins TemplatePrecedence = iota
	TemplateWins
)

type slot struct {
	gen  uint32
	live bool
	kind NodeKind
	// tag for elements, content for text and comments
	data     string
	parent   Handle
	children []Handle
	attrs    *orderedmap.Map[string, *Attribute]
	resolved map[string]*Attribute
	// shadow is the instantiated template content of a template host
	shadow Handle
	// host is set on the root of a shadow tree
	host Handle
}

// Document owns every node of an SVG document tree. A Document is not
// safe for concurrent use.
type Document struct {
	slots  []slot
	free   []uint32
	root   Handle
	live   int
	strict bool
	ids    map[string]Handle

	external   []string
	stylesheet *css.Stylesheet
	precedence TemplatePrecedence

	edges   []ReferenceEdge
	edgeIdx map[edgeKey]int
	// shadow node -> document node it was cloned from
	shadowOrigin map[Handle]Handle
	shadowRoots  []Handle
}

type edgeKey struct {
	source Handle
	name   string
}
