package demo

import "github.com/Nenotriple/marktext/pkg/marktext"

const overviewText = `# marktext Overview
**marktext** renders constrained markup as styled, scrollable text in the terminal.

**Highlights:**
- **Window** is a pop-up display
- **Panel** is an embeddable view

## Formatting Guide

Start a line with #, ##, or ### for headings:
-
# Heading 1
-
## Heading 2
-
### Heading 3
-
**Heading 4**
(Just bold text)

Text can be made italic, bold, or both by wrapping with asterisks:
- *italic*, *(single asterisk)*
- **bold**, *(double asterisks)*
- ***bold italic***, *(triple asterisks)*
- __underline__, *(double underscores)*
`

const justifyText = `[justify:left]# Left-justify (default)
This text is **left-aligned** with *formatted* content.
Multiple lines stay left-aligned.[/justify]

[justify:center]
# Center-justify
This entire block is **centered**.
Even with *italic* and **bold** formatting.
[/justify]

[justify:right]
# Right-justify
Everything here appears on the **right side**.
Great for *signatures* or credits.
[/justify]

normal text (default left-justified)

[justify:left]Some text to the left,[/justify] [justify:center]some text in the center,[/justify] [justify:right]some text to the right.[/justify]
`

const plainText = `Pass a plain string to render it as-is.

This example uses a computed footer to showcase live panel state.
`

var listItems = marktext.List{
	"Simple mode accepts lists.",
	"Each item is written on its own line.",
	"Great for lightweight instructions.",
}

// dynamicContent is what the right arrow cycles through. The middle entry
// is a list on purpose: switching it to rich mode shows the fallback error.
var dynamicContent = []marktext.Content{
	marktext.Text("# Dynamic Rich\nThis block shows **bold**, *italic*, and multiple lines.\n\n## Subsection\nHeadings work in updates too."),
	marktext.List{"Dynamic list entry", "Fallback from rich mode to simple", "Still readable"},
	marktext.Text("Plain string update, useful for quick notices."),
}

// windowVariant is one entry in the pop-up gallery, opened by keys 1-7.
type windowVariant struct {
	key      string
	label    string
	content  marktext.Content
	rich     bool
	geometry string
}

var windowVariants = []windowVariant{
	{key: "rich", label: "Rich format", content: marktext.Text(overviewText), rich: true},
	{key: "list", label: "Simple list", content: listItems, rich: false},
	{key: "simple", label: "Simple text", content: marktext.Text(plainText), rich: false},
	{key: "none", label: "No content", rich: true},
	{key: "large", label: "Large window", content: marktext.Text(overviewText), rich: true, geometry: "100x30"},
	{key: "small", label: "Small window", content: marktext.Text(overviewText), rich: true, geometry: "40x12"},
	{key: "fallback", label: "Rich mode + list", content: listItems, rich: true},
}
