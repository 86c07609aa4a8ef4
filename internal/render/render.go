package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"

	"github.com/oahshtsua/lab/bst/algos/bst"
)

type Style string

const (
	StyleASCII   Style = "ascii"
	StyleRounded Style = "rounded"
	StyleList    Style = "list"
)

var ErrUnknownStyle = errors.New("unknown render style")

func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(s)) {
	case StyleASCII, "":
		return StyleASCII, nil
	case StyleRounded:
		return StyleRounded, nil
	case StyleList:
		return StyleList, nil
	}
	return "", errors.Wrapf(ErrUnknownStyle, "%q", s)
}

// Tree writes the shape of the tree rooted at root to w. The tree is only
// read.
func Tree(w io.Writer, root *bst.Node, style Style) error {
	if root == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}

	switch style {
	case StyleASCII, "":
		var sb strings.Builder
		printSubTree(&sb, root, "", true)
		_, err := io.WriteString(w, sb.String())
		return err

	case StyleRounded, StyleList:
		l := list.NewWriter()
		if style == StyleRounded {
			l.SetStyle(list.StyleConnectedRounded)
		} else {
			l.SetStyle(list.StyleConnectedLight)
		}
		appendSubTree(l, root, "")
		_, err := fmt.Fprintln(w, l.Render())
		return err
	}

	return errors.Wrapf(ErrUnknownStyle, "%q", style)
}

func printSubTree(sb *strings.Builder, node *bst.Node, prefix string, isTail bool) {
	if node == nil {
		fmt.Fprintf(sb, "%s%s── nil\n", prefix, getBranch(isTail))
		return
	}

	fmt.Fprintf(sb, "%s%s── %d\n", prefix, getBranch(isTail), node.Key())

	newPrefix := prefix + getIndent(isTail)
	if node.Left() != nil || node.Right() != nil {
		printSubTree(sb, node.Right(), newPrefix, false)
		printSubTree(sb, node.Left(), newPrefix, true)
	}
}

func getBranch(isTail bool) string {
	if isTail {
		return "└"
	}
	return "├"
}

func getIndent(isTail bool) string {
	if isTail {
		return "   "
	}
	return "│  "
}

func appendSubTree(l list.Writer, node *bst.Node, side string) {
	if node == nil {
		l.AppendItem(side + "nil")
		return
	}

	l.AppendItem(side + strconv.Itoa(node.Key()))
	if node.Left() == nil && node.Right() == nil {
		return
	}

	l.Indent()
	appendSubTree(l, node.Left(), "L: ")
	appendSubTree(l, node.Right(), "R: ")
	l.UnIndent()
}

// Stats writes a table of the structural queries of the tree rooted at root.
func Stats(w io.Writer, root *bst.Node, colored bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	style := table.StyleLight
	if colored {
		style = table.StyleColoredDark
	}
	t.SetStyle(style)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
	})

	min := "-"
	if v, err := root.Min(); err == nil {
		min = strconv.Itoa(v)
	}

	t.AppendHeader(table.Row{"query", "value"})
	t.AppendRows([]table.Row{
		{"count", root.Count()},
		{"height", root.Height()},
		{"min", min},
		{"in-order", fmt.Sprint(bst.Keys(root))},
	})
	t.Render()
}
