package svg

import (
	"strings"
	"testing"
)

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{100, "100"},
		{1.5, "1.5"},
		{1.256, "1.26"},
		{-0.001, "0"},
		{-12.3, "-12.3"},
	}
	for _, tt := range tests {
		if got := Num(tt.in); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	x, y, ok := ParseTranslate(Translate(12.5, -3))
	if !ok || x != 12.5 || y != -3 {
		t.Errorf("ParseTranslate(Translate(12.5,-3)) = %v, %v, %v", x, y, ok)
	}
	if _, _, ok := ParseTranslate("scale(2)"); ok {
		t.Error("ParseTranslate should reject non-translate transforms")
	}
	if x, y, ok := ParseTranslate("translate(4)"); !ok || x != 4 || y != 0 {
		t.Errorf("single argument translate = %v, %v, %v", x, y, ok)
	}
}

func TestSetReplacesAttribute(t *testing.T) {
	e := New("rect", "x", "1", "y", "2")
	e.Set("x", "5")
	if len(e.Attrs) != 2 {
		t.Fatalf("attrs = %v, want 2 entries", e.Attrs)
	}
	if v, _ := e.Get("x"); v != "5" {
		t.Errorf("x = %q, want 5", v)
	}
	if e.Float("y") != 2 {
		t.Errorf("Float(y) = %v, want 2", e.Float("y"))
	}
}

func TestFindAndCount(t *testing.T) {
	root := G("root", "",
		G("cell a", "", Text("label", 0, 0, "A")),
		G("cell b", "", Text("label", 0, 0, "B")),
		nil,
		G("axis", ""),
	)
	if got := root.Count("cell"); got != 2 {
		t.Errorf("Count(cell) = %d, want 2", got)
	}
	if got := root.Count("label"); got != 2 {
		t.Errorf("Count(label) = %d, want 2", got)
	}
	if got := root.Find("b").Find("label").Text; got != "B" {
		t.Errorf("Find(b).Find(label) = %q, want B", got)
	}
	if root.Find("missing") != nil {
		t.Error("Find(missing) should be nil")
	}
	if len(root.Children) != 3 {
		t.Errorf("Append should skip nil children, got %d", len(root.Children))
	}
}

func TestEncode(t *testing.T) {
	root := New("svg", "xmlns", Namespace)
	root.Append(
		G("grid", Translate(10, 20),
			Rect("bg", 0, 0, 100, 50),
			Text("label", 1, 2, `Q&A <"x">`),
		),
	)

	got := string(Marshal(root))
	want := `<svg xmlns="http://www.w3.org/2000/svg">
  <g class="grid" transform="translate(10,20)">
    <rect class="bg" x="0" y="0" width="100" height="50"/>
    <text class="label" x="1" y="2">Q&amp;A &lt;&#34;x&#34;&gt;</text>
  </g>
</svg>
`
	if got != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	build := func() *Element {
		return G("a", "", Line("l", 0, 0, 1, 1), Circle("c", 2, 2, 3), Path("p", "M0,0L1,1"))
	}
	a, b := string(Marshal(build())), string(Marshal(build()))
	if a != b {
		t.Error("encoding the same tree twice should produce identical output")
	}
	if !strings.Contains(a, `d="M0,0L1,1"`) {
		t.Errorf("path data missing from %s", a)
	}
}
