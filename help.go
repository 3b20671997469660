package opts

import "io"

// Renderer renders the help text of single options. Package help provides
// the usual implementation.
type Renderer interface {
	// Width returns the number of columns the names of o need, including
	// any padding.
	Width(o *Option) int
	// Render writes the help text of o. Descriptions start at the given
	// column.
	Render(w io.Writer, o *Option, column int) error
}

// WriteHelp writes the help text of all options except hidden ones, in
// registration order. Descriptions are aligned at the largest width of any
// option, but never beyond maxColumn unless maxColumn is 0.
func (r *Registry) WriteHelp(w io.Writer, renderer Renderer, maxColumn int) error {
	column := 0
	for _, o := range r.options {
		if o.hidden {
			continue
		}
		if n := renderer.Width(o); n > column {
			column = n
		}
	}
	if maxColumn > 0 && column > maxColumn {
		column = maxColumn
	}
	for _, o := range r.options {
		if o.hidden {
			continue
		}
		if err := renderer.Render(w, o, column); err != nil {
			return err
		}
	}
	return nil
}
