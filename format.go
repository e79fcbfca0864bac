// format.go — fmt.Formatter implementations for diag errors.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%q       → quoted Error().
//	%+v      → verbose, structured multi-line format:
//	             kind=<kind> msg="<message>"
//	             group: tag1 tag2 ...
//	             payload: key1=val1 key2=val2 ...
//	             frames:
//	               <message> @ file:line [key=val ...]
//	             cause: <recursively formatted with %+v>
//
// Rationale:
//   - Core stays free of logging/JSON policy; only fmt formatting.
//   - Deterministic order everywhere: payload and debug values are ordered
//     Field lists, frames render oldest first.
//   - Payload values render through the Renderable boundary; no reflection.
//   - Debug values only appear when they were captured, which the frame gate
//     already restricts to diagnostic mode.
package diag

import (
	"fmt"
	"io"
)

// renderValue resolves a payload or debug value to text at the formatting
// boundary. Renderable values describe themselves; everything else goes
// through %v.
func renderValue(v any) string {
	if r, ok := v.(Renderable); ok {
		return r.Render()
	}
	return fmt.Sprintf("%v", v)
}

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes the structured multi-line representation shared by
// both concrete types. Empty sections are omitted.
func formatVerbose(w io.Writer, kind Kind, msg string, group Group, payload fields, ctx Context, cause error) {
	_, _ = fmt.Fprintf(w, "kind=%s msg=%q", kind, msg)

	if tags := group.Tags(); len(tags) > 0 {
		_, _ = io.WriteString(w, "\ngroup:")
		for _, t := range tags {
			_, _ = fmt.Fprintf(w, " %s", t)
		}
	}

	if len(payload) > 0 {
		_, _ = io.WriteString(w, "\npayload:")
		for _, f := range payload {
			_, _ = fmt.Fprintf(w, " %s=%s", f.Key, renderValue(f.Val))
		}
	}

	if frames := ctx.Frames(); len(frames) > 0 {
		_, _ = io.WriteString(w, "\nframes:")
		for _, fr := range frames {
			_, _ = fmt.Fprintf(w, "\n  %s @ %s", fr.Message, fr.Location)
			for _, d := range fr.debugFields() {
				_, _ = fmt.Fprintf(w, " %s=%s", d.Key, renderValue(d.Val))
			}
		}
	}

	if cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		// Recurse with %+v so nested renderings are preserved.
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}
}

// -----------------------------------------------------------------------------
// kindErr formatting
// -----------------------------------------------------------------------------

func (e *kindErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e.kind, e.msg, e.group, e.payload, e.ctx, e.cause)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

// -----------------------------------------------------------------------------
// multiErr formatting — recurses into sub-errors with their own %+v
// -----------------------------------------------------------------------------

func (m *multiErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, KindMultipleIssues, "", m.group, nil, m.ctx, nil)
			for i, e := range m.errs {
				_, _ = fmt.Fprintf(s, "\nissue %d: %+v", i+1, e)
			}
			return
		}
		formatConcise(s, m)
	case 's':
		formatConcise(s, m)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", m.Error())
	default:
		formatConcise(s, m)
	}
}
