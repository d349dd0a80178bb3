package safecast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type Baz interface {
	isBaz()
}

type Foo struct {
	Name string
}

type Bar struct {
	Count int
}

func (*Foo) isBaz() {}
func (*Bar) isBaz() {}

var (
	fooCase = NewCase(func(f *Foo) Baz { return f })
	barCase = NewCase(func(b *Bar) Baz { return b })
)

// shape is a tagged union with a hand-written declaration per alternative.
type shape struct {
	kind   shapeKind
	circle circle
	rect   rect
}

type shapeKind uint8

const (
	shapeCircle shapeKind = iota + 1
	shapeRect
)

type circle struct {
	radius float64
}

type rect struct {
	w, h float64
}

type circleVariant struct{}

func (circleVariant) AsVariant(s shape) (*circle, bool) {
	if s.kind != shapeCircle {
		return nil, false
	}

	return &s.circle, true
}

func (circleVariant) AsVariantMut(s *shape) (*circle, bool) {
	if s.kind != shapeCircle {
		return nil, false
	}

	return &s.circle, true
}

func (circleVariant) IntoVariant(s shape) (circle, bool) {
	if s.kind != shapeCircle {
		return circle{}, false
	}

	return s.circle, true
}

type rectVariant struct{}

func (rectVariant) AsVariant(s shape) (*rect, bool) {
	if s.kind != shapeRect {
		return nil, false
	}

	return &s.rect, true
}

func (rectVariant) AsVariantMut(s *shape) (*rect, bool) {
	if s.kind != shapeRect {
		return nil, false
	}

	return &s.rect, true
}

func (rectVariant) IntoVariant(s shape) (rect, bool) {
	if s.kind != shapeRect {
		return rect{}, false
	}

	return s.rect, true
}

func TestCaseAsVariant(t *testing.T) {
	f := Foo{Name: "f"}
	v := fooCase.Wrap(f)

	got, ok := AsVariant(fooCase, v)
	if !ok {
		t.Fatalf("AsVariant[Foo] reported absent")
	}

	if diff := cmp.Diff(f, *got); diff != "" {
		t.Fatalf("AsVariant[Foo] mismatch (-want +got):\n%s", diff)
	}

	if b, ok := AsVariant(barCase, v); ok || b != nil {
		t.Fatalf("AsVariant[Bar] = (%v, %v), want (nil, false)", b, ok)
	}
}

func TestCaseIntoVariant(t *testing.T) {
	v := fooCase.Wrap(Foo{Name: "f"})

	if _, ok := IntoVariant(barCase, v); ok {
		t.Fatalf("IntoVariant[Bar] reported present for a Foo")
	}

	got, ok := IntoVariant(fooCase, v)
	if !ok || got.Name != "f" {
		t.Fatalf("IntoVariant[Foo] = (%+v, %v), want ({Name:f}, true)", got, ok)
	}

	// The owned copy is detached from the sum value.
	got.Name = "changed"
	if p, _ := AsVariant(fooCase, v); p.Name != "f" {
		t.Fatalf("IntoVariant result aliases the sum value")
	}
}

func TestCaseAsVariantMut(t *testing.T) {
	v := barCase.Wrap(Bar{Count: 1})

	p, ok := AsVariantMut(barCase, &v)
	if !ok {
		t.Fatalf("AsVariantMut[Bar] reported absent")
	}
	p.Count++

	got, _ := IntoVariant(barCase, v)
	if got.Count != 2 {
		t.Fatalf("Count = %d after in-place update, want 2", got.Count)
	}

	if _, ok := AsVariantMut(fooCase, &v); ok {
		t.Fatalf("AsVariantMut[Foo] reported present for a Bar")
	}

	if _, ok := AsVariantMut[Baz, Bar](barCase, nil); ok {
		t.Fatalf("AsVariantMut on nil pointer reported present")
	}
}

func TestCaseExactlyOneMatches(t *testing.T) {
	values := []Baz{
		fooCase.Wrap(Foo{}),
		barCase.Wrap(Bar{}),
		Cast[Foo, Baz](fooCase, Foo{Name: "cast"}),
	}

	for i, v := range values {
		_, isFoo := AsVariant(fooCase, v)
		_, isBar := AsVariant(barCase, v)

		if isFoo == isBar {
			t.Fatalf("value %d: foo=%v bar=%v, want exactly one match", i, isFoo, isBar)
		}
	}
}

func TestCaseNilAlternative(t *testing.T) {
	var nilFoo *Foo
	var v Baz = nilFoo

	if _, ok := AsVariant(fooCase, v); ok {
		t.Fatalf("typed nil *Foo matched")
	}

	if _, ok := AsVariant(barCase, v); ok {
		t.Fatalf("typed nil *Foo matched Bar")
	}

	var empty Baz
	if _, ok := IntoVariant(fooCase, empty); ok {
		t.Fatalf("nil Baz matched")
	}
}

func TestTaggedUnionVariant(t *testing.T) {
	s := shape{kind: shapeCircle, circle: circle{radius: 2}}

	t.Run("borrowed", func(t *testing.T) {
		c, ok := AsVariant[shape, circle](circleVariant{}, s)
		if !ok || c.radius != 2 {
			t.Fatalf("AsVariant[circle] = (%v, %v), want radius 2", c, ok)
		}

		if _, ok := AsVariant[shape, rect](rectVariant{}, s); ok {
			t.Fatalf("AsVariant[rect] reported present for a circle")
		}
	})

	t.Run("mutable", func(t *testing.T) {
		local := s
		c, ok := AsVariantMut[shape, circle](circleVariant{}, &local)
		if !ok {
			t.Fatalf("AsVariantMut[circle] reported absent")
		}
		c.radius = 5

		if local.circle.radius != 5 {
			t.Fatalf("radius = %v after in-place update, want 5", local.circle.radius)
		}

		if s.circle.radius != 2 {
			t.Fatalf("update leaked into the original value")
		}
	})

	t.Run("owned", func(t *testing.T) {
		if _, ok := IntoVariant[shape, rect](rectVariant{}, s); ok {
			t.Fatalf("IntoVariant[rect] reported present for a circle")
		}

		c, ok := IntoVariant[shape, circle](circleVariant{}, s)
		if !ok || c.radius != 2 {
			t.Fatalf("IntoVariant[circle] = (%v, %v), want radius 2", c, ok)
		}
	})

	t.Run("zeroTag", func(t *testing.T) {
		var zero shape
		if _, ok := IntoVariant[shape, circle](circleVariant{}, zero); ok {
			t.Fatalf("zero shape matched circle")
		}
	})
}
