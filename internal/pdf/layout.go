package pdf

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

type blockKind int

const (
	blockHeading blockKind = iota
	blockParagraph
	blockListItem
	blockRow
)

// block is one laid-out unit of a document body.
type block struct {
	kind   blockKind
	level  int
	marker string
	text   string
	cells  []string
	header bool
}

// document is a markup body reduced to printable blocks.
type document struct {
	title  string
	blocks []block
}

type listState struct {
	ordered bool
	next    int
}

// parseBody walks the markup once, keeping text and structure and dropping
// styling, scripts and images.
func parseBody(body string) document {
	var (
		doc     document
		text    strings.Builder
		cell    strings.Builder
		lists   []listState
		row     []string
		inRow   bool
		inCell  bool
		header  bool
		item    *block
		heading int
		skip    int
		inTitle bool
	)

	flush := func() {
		value := cleanText(text.String())
		text.Reset()
		if value == "" {
			return
		}
		switch {
		case item != nil:
			if item.text != "" {
				item.text += " "
			}
			item.text += value
		case heading > 0:
			doc.blocks = append(doc.blocks, block{kind: blockHeading, level: heading, text: value})
		default:
			doc.blocks = append(doc.blocks, block{kind: blockParagraph, text: value})
		}
	}

	z := html.NewTokenizer(strings.NewReader(body))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		name, _ := z.TagName()
		tag := string(name)

		switch tt {
		case html.TextToken:
			if skip > 0 {
				continue
			}
			raw := strings.ReplaceAll(string(z.Text()), "\n", " ")
			switch {
			case inTitle:
				doc.title += strings.TrimSpace(raw)
			case inCell:
				cell.WriteString(raw)
			default:
				text.WriteString(raw)
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			switch tag {
			case "style", "script", "noscript":
				if tt == html.StartTagToken {
					skip++
				}
			case "title":
				inTitle = tt == html.StartTagToken
			case "br":
				if inCell {
					cell.WriteString("\n")
				} else {
					text.WriteString("\n")
				}
			case "h1", "h2", "h3", "h4", "h5", "h6":
				flush()
				heading, _ = strconv.Atoi(tag[1:])
			case "ul", "ol":
				flush()
				lists = append(lists, listState{ordered: tag == "ol", next: 1})
			case "li":
				flush()
				marker := "-"
				if n := len(lists); n > 0 && lists[n-1].ordered {
					marker = strconv.Itoa(lists[n-1].next) + "."
					lists[n-1].next++
				}
				item = &block{kind: blockListItem, marker: marker, level: len(lists)}
			case "tr":
				flush()
				inRow, row, header = true, nil, false
			case "td", "th":
				if inRow {
					inCell = true
					cell.Reset()
					if tag == "th" {
						header = true
					}
				}
			case "p", "div", "header", "footer", "section", "table", "body":
				flush()
			}

		case html.EndTagToken:
			switch tag {
			case "style", "script", "noscript":
				if skip > 0 {
					skip--
				}
			case "title":
				inTitle = false
			case "h1", "h2", "h3", "h4", "h5", "h6":
				flush()
				heading = 0
			case "li":
				flush()
				if item != nil && item.text != "" {
					doc.blocks = append(doc.blocks, *item)
				}
				item = nil
			case "ul", "ol":
				flush()
				if len(lists) > 0 {
					lists = lists[:len(lists)-1]
				}
			case "td", "th":
				if inCell {
					row = append(row, cleanText(cell.String()))
					inCell = false
				}
			case "tr":
				if inRow && hasContent(row) {
					doc.blocks = append(doc.blocks, block{kind: blockRow, cells: row, header: header})
				}
				inRow = false
			case "p", "div", "header", "footer", "section", "table", "body":
				flush()
			}
		}
	}
	flush()
	return doc
}

// cleanText collapses whitespace runs and keeps explicit line breaks.
func cleanText(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func hasContent(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return true
		}
	}
	return false
}
