package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/c360studio/semsketch/statement"
)

// Block serializes the set to the grouped block format: a prefix
// declaration header, then one block per subject with predicate tokens
// right-padded to the block's widest predicate, each statement line
// closed by " ;" and each block by a line containing only ".".
func (e *Exporter) Block(set statement.Set) string {
	blocks := orderBlocks(set)
	var sb strings.Builder

	e.writePrefixHeader(&sb, blocks)

	for i, block := range blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(block.subject)
		sb.WriteString("\n")

		width := 0
		for _, st := range block.statements {
			if len(st.Predicate) > width {
				width = len(st.Predicate)
			}
		}
		for _, st := range block.statements {
			sb.WriteString("    ")
			sb.WriteString(st.Predicate)
			sb.WriteString(strings.Repeat(" ", width-len(st.Predicate)+1))
			sb.WriteString(e.blockObject(st.Object))
			sb.WriteString(" ;\n")
		}
		sb.WriteString(".\n")
	}
	return sb.String()
}

// writePrefixHeader emits one @prefix line per prefix actually
// referenced by the blocks, sorted by label and colon-aligned, followed
// by one blank line.
func (e *Exporter) writePrefixHeader(sb *strings.Builder, blocks []subjectBlock) {
	used := make(map[string]bool)
	note := func(term string) {
		if p := prefixOf(term); p != "" {
			if _, ok := e.prefixes[p]; ok {
				used[p] = true
			}
		}
	}
	for _, block := range blocks {
		note(block.subject)
		for _, st := range block.statements {
			note(st.Predicate)
			switch o := st.Object.(type) {
			case statement.Reference:
				note(string(o))
			case statement.List:
				for _, name := range o {
					note(name)
				}
			}
		}
	}
	if len(used) == 0 {
		return
	}

	labels := make([]string, 0, len(used))
	width := 0
	for l := range used {
		labels = append(labels, l)
		if len(l) > width {
			width = len(l)
		}
	}
	sort.Strings(labels)

	for _, l := range labels {
		sb.WriteString("@prefix ")
		sb.WriteString(l)
		sb.WriteString(":")
		sb.WriteString(strings.Repeat(" ", width-len(l)+1))
		sb.WriteString("<")
		sb.WriteString(e.prefixes[l])
		sb.WriteString("> .\n")
	}
	sb.WriteString("\n")
}

func (e *Exporter) blockObject(obj statement.Object) string {
	switch o := obj.(type) {
	case statement.Reference:
		return string(o)
	case statement.Literal:
		return `"` + escapeString(string(o)) + `"`
	case statement.Integer:
		return strconv.Itoa(int(o))
	case statement.List:
		return "( " + strings.Join([]string(o), " ") + " )"
	default:
		return fmt.Sprintf("%v", obj)
	}
}
