package svg

// G returns a group element with an optional class and transform.
func G(class, transform string, children ...*Element) *Element {
	g := New("g")
	if class != "" {
		g.Set("class", class)
	}
	if transform != "" {
		g.Set("transform", transform)
	}
	return g.Append(children...)
}

// Rect returns a rectangle.
func Rect(class string, x, y, w, h float64) *Element {
	r := New("rect")
	if class != "" {
		r.Set("class", class)
	}
	return r.SetNum("x", x).SetNum("y", y).SetNum("width", w).SetNum("height", h)
}

// Line returns a line segment.
func Line(class string, x1, y1, x2, y2 float64) *Element {
	l := New("line")
	if class != "" {
		l.Set("class", class)
	}
	return l.SetNum("x1", x1).SetNum("y1", y1).SetNum("x2", x2).SetNum("y2", y2)
}

// Circle returns a circle.
func Circle(class string, cx, cy, r float64) *Element {
	c := New("circle")
	if class != "" {
		c.Set("class", class)
	}
	return c.SetNum("cx", cx).SetNum("cy", cy).SetNum("r", r)
}

// Path returns a path element with the given d attribute.
func Path(class, d string) *Element {
	p := New("path")
	if class != "" {
		p.Set("class", class)
	}
	return p.Set("d", d)
}

// Text returns a text element positioned at (x, y).
func Text(class string, x, y float64, content string) *Element {
	t := New("text")
	if class != "" {
		t.Set("class", class)
	}
	t.SetNum("x", x).SetNum("y", y)
	t.Text = content
	return t
}
