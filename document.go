package svgdom

import (
	"github.com/lestrrat-go/svgdom/css"
	"github.com/lestrrat-go/svgdom/internal/orderedmap"
	"github.com/pkg/errors"
)

func NewDocument(options ...DocumentOption) *Document {
	d := &Document{
		slots:        make([]slot, 1), // index 0 is never used
		ids:          make(map[string]Handle),
		stylesheet:   css.NewStylesheet(),
		edgeIdx:      make(map[edgeKey]int),
		shadowOrigin: make(map[Handle]Handle),
	}
	for _, o := range options {
		d.applyOption(o)
	}
	return d
}

func (d *Document) applyOption(o Option) bool {
	switch o.Ident() {
	case identStrict{}:
		d.strict = o.Value().(bool)
	case identStylesheet{}:
		d.external = append(d.external, o.Value().(string))
	case identTemplatePrecedence{}:
		d.precedence = o.Value().(TemplatePrecedence)
	default:
		return false
	}
	return true
}

// Strict reports whether unparseable attribute values are rejected.
func (d *Document) Strict() bool {
	return d.strict
}

// AddStylesheet adds an external stylesheet. It takes effect on the
// next ResolveStyles.
func (d *Document) AddStylesheet(text string) error {
	if err := css.NewStylesheet().Append(text, css.OriginExternal); err != nil {
		return err
	}
	d.external = append(d.external, text)
	return nil
}

func (d *Document) alloc(kind NodeKind, data string) Handle {
	var idx uint32
	if l := len(d.free); l > 0 {
		idx = d.free[l-1]
		d.free = d.free[:l-1]
	} else {
		d.slots = append(d.slots, slot{})
		idx = uint32(len(d.slots) - 1)
	}

	s := &d.slots[idx]
	gen := s.gen + 1
	*s = slot{
		gen:  gen,
		live: true,
		kind: kind,
		data: data,
	}
	if kind == ElementNode {
		s.attrs = orderedmap.New[string, *Attribute]()
		s.resolved = make(map[string]*Attribute)
	}
	d.live++
	return Handle{index: idx, gen: gen}
}

// release invalidates a single slot. Its generation stays, so the next
// allocation of this index gets a new one.
func (d *Document) release(h Handle) {
	s := &d.slots[h.index]
	gen := s.gen
	*s = slot{gen: gen}
	d.free = append(d.free, h.index)
	d.live--
}

func (d *Document) slot(h Handle) (*slot, error) {
	if !h.IsValid() || int(h.index) >= len(d.slots) {
		return nil, &StaleHandleError{Handle: h}
	}
	s := &d.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, &StaleHandleError{Handle: h}
	}
	return s, nil
}

func (d *Document) element(h Handle) (*slot, error) {
	s, err := d.slot(h)
	if err != nil {
		return nil, err
	}
	if s.kind != ElementNode {
		return nil, ErrNotElement
	}
	return s, nil
}

// at returns the slot of a handle known to be live.
func (d *Document) at(h Handle) *slot {
	return &d.slots[h.index]
}

// IsLive reports whether h designates a node that has not been removed.
func (d *Document) IsLive(h Handle) bool {
	_, err := d.slot(h)
	return err == nil
}

// Len returns the number of live nodes, attached or not.
func (d *Document) Len() int {
	return d.live
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) Handle {
	return d.alloc(ElementNode, tag)
}

// CreateText creates a detached text node.
func (d *Document) CreateText(content string) Handle {
	return d.alloc(TextNode, content)
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(content string) Handle {
	return d.alloc(CommentNode, content)
}

// Root returns the document element, or InvalidHandle.
func (d *Document) Root() Handle {
	if !d.IsLive(d.root) {
		return InvalidHandle
	}
	return d.root
}

// SetRoot makes a detached element the document element. The previous
// document element, if any, stays alive but detached.
func (d *Document) SetRoot(h Handle) error {
	s, err := d.element(h)
	if err != nil {
		return err
	}
	if s.parent.IsValid() || s.host.IsValid() {
		return ErrHierarchy
	}
	d.root = h
	return nil
}

func (d *Document) Kind(h Handle) (NodeKind, error) {
	s, err := d.slot(h)
	if err != nil {
		return 0, err
	}
	return s.kind, nil
}

// Tag returns the tag name of an element.
func (d *Document) Tag(h Handle) (string, error) {
	s, err := d.element(h)
	if err != nil {
		return "", err
	}
	return s.data, nil
}

// SetTag renames element h. Attribute values keep the types they were
// parsed with; call Resolve to refresh styles and references.
func (d *Document) SetTag(h Handle, name string) error {
	if name == "" {
		return errors.New(`empty tag name`)
	}
	s, err := d.element(h)
	if err != nil {
		return err
	}
	s.data = name
	return nil
}

// Text returns the content of a text or comment node.
func (d *Document) Text(h Handle) (string, error) {
	s, err := d.slot(h)
	if err != nil {
		return "", err
	}
	if s.kind == ElementNode {
		return "", ErrNotCharacterData
	}
	return s.data, nil
}

// SetText replaces the content of a text or comment node.
func (d *Document) SetText(h Handle, content string) error {
	s, err := d.slot(h)
	if err != nil {
		return err
	}
	if s.kind == ElementNode {
		return ErrNotCharacterData
	}
	s.data = content
	return nil
}
