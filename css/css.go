// Package css turns stylesheet text into the rule and declaration
// records used by the style cascade. Parsing is delegated to douceur.
package css

import (
	"strings"

	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/pkg/errors"
)

// Origin tells where a rule came from.
type Origin int

const (
	// OriginExternal rules were supplied by the caller, outside the
	// document.
	OriginExternal Origin = iota
	// OriginEmbedded rules come from a <style> element.
	OriginEmbedded
)

func (o Origin) String() string {
	if o == OriginEmbedded {
		return "embedded"
	}
	return "external"
}

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Rule is a single-selector style rule. Grouped selectors ("a, b") are
// split into one Rule each, sharing Order.
type Rule struct {
	Selector     string
	Declarations []Declaration
	Origin       Origin
	Order        int
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	rules []*Rule
	next  int
}

func NewStylesheet() *Stylesheet {
	return &Stylesheet{}
}

// Rules returns the rules in source order.
func (s *Stylesheet) Rules() []*Rule {
	return s.rules
}

func (s *Stylesheet) Len() int {
	return len(s.rules)
}

// Append parses text and adds its rules after the existing ones.
// At-rules are skipped.
func (s *Stylesheet) Append(text string, origin Origin) error {
	sheet, err := parser.Parse(text)
	if err != nil {
		return errors.Wrap(err, `failed to parse stylesheet`)
	}

	for _, r := range sheet.Rules {
		if r.Kind == dcss.AtRule {
			continue
		}
		if len(r.Declarations) == 0 {
			continue
		}
		decls := convertDeclarations(r.Declarations)
		order := s.next
		s.next++
		for _, sel := range r.Selectors {
			sel = strings.TrimSpace(sel)
			if sel == "" {
				continue
			}
			s.rules = append(s.rules, &Rule{
				Selector:     sel,
				Declarations: decls,
				Origin:       origin,
				Order:        order,
			})
		}
	}
	return nil
}

// ParseInline parses the content of a style attribute.
func ParseInline(text string) ([]Declaration, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	// the last declaration loses its value unless it is terminated
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, errors.Wrap(err, `failed to parse inline style`)
	}
	return convertDeclarations(decls), nil
}

func convertDeclarations(list []*dcss.Declaration) []Declaration {
	decls := make([]Declaration, 0, len(list))
	for _, d := range list {
		decls = append(decls, Declaration{
			Property:  strings.TrimSpace(d.Property),
			Value:     strings.TrimSpace(d.Value),
			Important: d.Important,
		})
	}
	return decls
}
