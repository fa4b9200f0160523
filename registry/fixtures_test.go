package registry

import "strconv"

type counter interface{ Next() int }

type namer interface{ Name() string }

type widget struct {
	n    int
	name string
}

func (w *widget) Next() int {
	w.n++
	return w.n
}

func (w widget) Name() string { return w.name }

type gadget struct{}

func (gadget) Name() string { return "gadget" }

// celsius needs a wrapper to satisfy namer.
type celsius float64

type label string

func (l label) Name() string { return string(l) }

func celsiusName(p *celsius) namer {
	return label(strconv.FormatFloat(float64(*p), 'f', 1, 64) + "C")
}

func recovered(f func()) (v any) {
	defer func() { v = recover() }()
	f()

	return nil
}
