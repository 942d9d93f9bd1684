package svgdom

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/lestrrat-go/svgdom/schema"
	"github.com/lestrrat-go/svgdom/value"
	"github.com/pkg/errors"
)

// Attribute returns the attribute specified on element h.
func (d *Document) Attribute(h Handle, name string) (Attribute, bool, error) {
	s, err := d.element(h)
	if err != nil {
		return Attribute{}, false, err
	}
	a, ok := s.attrs.Get(name)
	if !ok {
		return Attribute{}, false, nil
	}
	return *a, true, nil
}

// Attributes returns the attributes specified on element h, in the
// order they were first set.
func (d *Document) Attributes(h Handle) ([]Attribute, error) {
	s, err := d.element(h)
	if err != nil {
		return nil, err
	}
	list := make([]Attribute, 0, s.attrs.Len())
	for _, a := range s.attrs.Range() {
		list = append(list, *a)
	}
	return list, nil
}

// SetAttribute stores a typed value.
func (d *Document) SetAttribute(h Handle, name string, v value.Value) error {
	if v == nil {
		return errors.New(`nil value`)
	}
	s, err := d.element(h)
	if err != nil {
		return err
	}
	d.storeAttribute(h, s, &Attribute{
		Name:       name,
		Raw:        value.Format(v, -1),
		Value:      v,
		Provenance: Presentation,
	})
	return nil
}

// SetAttributeIfAbsent stores v unless element h already specifies
// name. It reports whether the value was stored.
func (d *Document) SetAttributeIfAbsent(h Handle, name string, v value.Value) (bool, error) {
	s, err := d.element(h)
	if err != nil {
		return false, err
	}
	if _, ok := s.attrs.Get(name); ok {
		return false, nil
	}
	if err := d.SetAttribute(h, name, v); err != nil {
		return false, err
	}
	return true, nil
}

// IsDefault reports whether the attribute specified on h carries the
// initial value of its property.
func (d *Document) IsDefault(h Handle, name string) (bool, error) {
	s, err := d.element(h)
	if err != nil {
		return false, err
	}
	a, ok := s.attrs.Get(name)
	if !ok {
		return false, nil
	}
	raw, ok := schema.Default(name)
	if !ok {
		return false, nil
	}
	def, err := value.Parse(name, s.data, raw)
	if err != nil {
		return false, errors.Wrapf(err, `failed to parse default of %q`, name)
	}
	return value.Equal(a.Value, def), nil
}

// SetAttributeString parses raw according to the attribute name and
// the element, and stores the result. In strict documents a value that
// does not parse is an error; otherwise it is stored as a String.
func (d *Document) SetAttributeString(h Handle, name, raw string) error {
	s, err := d.element(h)
	if err != nil {
		return err
	}
	a, err := d.parseAttribute(context.Background(), s.data, name, raw)
	if err != nil {
		return err
	}
	d.storeAttribute(h, s, a)
	return nil
}

func (d *Document) parseAttribute(ctx context.Context, tag, name, raw string) (*Attribute, error) {
	if name == "id" {
		return &Attribute{Name: name, Raw: raw, Value: value.String(strings.TrimSpace(raw))}, nil
	}
	v, err := value.Parse(name, tag, raw)
	if err != nil {
		if d.strict {
			return nil, err
		}
		getTraceLogFromContext(ctx).Warn("keeping unparsed attribute value",
			slog.String("element", tag),
			slog.String("attribute", name),
			slog.Any("error", err),
		)
		v = value.String(raw)
	}
	return &Attribute{Name: name, Raw: raw, Value: v, Provenance: Presentation}, nil
}

func (d *Document) storeAttribute(h Handle, s *slot, a *Attribute) {
	if old, ok := s.attrs.Get(a.Name); ok {
		a.Hidden = old.Hidden
		if a.Name == "id" {
			d.unregisterID(idOf(old), h)
		}
	}
	s.attrs.Set(a.Name, a)
	if a.Name == "id" {
		d.registerID(idOf(a), h)
	}
}

func idOf(a *Attribute) string {
	return strings.TrimSpace(a.Raw)
}

// RemoveAttribute deletes an attribute, reporting whether it existed.
func (d *Document) RemoveAttribute(h Handle, name string) (bool, error) {
	s, err := d.element(h)
	if err != nil {
		return false, err
	}
	old, ok := s.attrs.Get(name)
	if !ok {
		return false, nil
	}
	s.attrs.Delete(name)
	if name == "id" {
		d.unregisterID(idOf(old), h)
	}
	return true, nil
}

// SetAttributeHidden marks an attribute as hidden. Hidden attributes
// stay in the tree and in the cascade but are left out of serialized
// output unless asked for.
func (d *Document) SetAttributeHidden(h Handle, name string, hidden bool) error {
	s, err := d.element(h)
	if err != nil {
		return err
	}
	a, ok := s.attrs.Get(name)
	if !ok {
		return errors.Errorf(`attribute %q is not set`, name)
	}
	c := *a
	c.Hidden = hidden
	s.attrs.Set(name, &c)
	return nil
}

// ID returns the id of element h, or "".
func (d *Document) ID(h Handle) string {
	s, err := d.element(h)
	if err != nil {
		return ""
	}
	if a, ok := s.attrs.Get("id"); ok {
		return idOf(a)
	}
	return ""
}

func (d *Document) registerID(id string, h Handle) {
	if id == "" {
		return
	}
	if cur, ok := d.ids[id]; ok && cur != h && d.ID(cur) == id {
		return
	}
	d.ids[id] = h
}

func (d *Document) unregisterID(id string, h Handle) {
	if cur, ok := d.ids[id]; ok && cur == h {
		delete(d.ids, id)
	}
}

// LookupID returns the element carrying id. Detached elements are
// found as long as they are alive.
func (d *Document) LookupID(id string) (Handle, bool) {
	if h, ok := d.ids[id]; ok && d.ID(h) == id {
		return h, true
	}
	for h := range d.Elements() {
		if d.ID(h) == id {
			d.ids[id] = h
			return h, true
		}
	}
	return InvalidHandle, false
}

// ResolvedAttribute returns the cascaded value of a property on h, as
// computed by the last ResolveStyles (or ResolveLinks for shadow
// content).
func (d *Document) ResolvedAttribute(h Handle, name string) (Attribute, bool, error) {
	s, err := d.element(h)
	if err != nil {
		return Attribute{}, false, err
	}
	a, ok := s.resolved[name]
	if !ok {
		return Attribute{}, false, nil
	}
	return *a, true, nil
}

// ResolvedAttributes returns every resolved property of h, sorted by
// name.
func (d *Document) ResolvedAttributes(h Handle) ([]Attribute, error) {
	s, err := d.element(h)
	if err != nil {
		return nil, err
	}
	list := make([]Attribute, 0, len(s.resolved))
	for _, a := range s.resolved {
		list = append(list, *a)
	}
	slices.SortFunc(list, func(a, b Attribute) int {
		return strings.Compare(a.Name, b.Name)
	})
	return list, nil
}

// ComputedValue returns the value a consumer should use for a
// property: the resolved value, with broken references replaced by
// their fallback (or none), and the initial value for properties that
// resolved to nothing. The boolean is false for unknown properties
// that are not set.
func (d *Document) ComputedValue(h Handle, name string) (value.Value, bool, error) {
	s, err := d.element(h)
	if err != nil {
		return nil, false, err
	}
	a, ok := s.resolved[name]
	if !ok {
		raw, ok := schema.Default(name)
		if !ok {
			return nil, false, nil
		}
		v, err := value.Parse(name, s.data, raw)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	}

	ref, isRef := a.Value.(value.Reference)
	if !isRef {
		return a.Value, true, nil
	}
	src := h
	if a.Provenance == Inherited {
		src = a.From
	}
	if e, ok := d.ReferenceEdge(src, name); ok && e.IsBroken() {
		if ref.Fallback != nil {
			return ref.Fallback, true, nil
		}
		return value.Keyword("none"), true, nil
	}
	return ref, true, nil
}
