// Package marktext provides read-only rich text widgets for Bubble Tea
// applications.
//
// Two widgets are exported: Panel, an embeddable scrollable text display,
// and Window, a pop-up built from a Panel that composites itself over the
// host view. Both render the constrained markup dialect of pkg/markup
// (three heading levels, bold/italic/underline combinations, and
// justification blocks) through a named Theme of Lip Gloss styles.
//
// Content comes in three shapes: a plain string (Text), a list of lines
// (List), and ordered label/body pairs (Sections). Rich rendering applies
// only to Text; other shapes degrade to a literal notice rather than an
// error, and nil content shows a placeholder.
//
// Example:
//
//	p := marktext.NewPanel(
//		marktext.WithText(marktext.Text("# Title\n\nSome **bold** text.")),
//		marktext.WithFooter("3 lines"),
//	)
//	p.SetSize(60, 20)
//
// Panels follow the Bubble Tea component convention: hosts forward
// messages through Update and render with View.
package marktext
