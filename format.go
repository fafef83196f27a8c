package treediff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// FormatPrettyString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyString(diffs Differences, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, diffs, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report to w, one line per difference.
// if colorTTY is true it will add
// red "-" for paths only in the first tree
// green "+" for paths only in the second tree
// blue "~" for changed values
func FormatPretty(w io.Writer, diffs Differences, colorTTY bool) error {
	var colorMap map[Operation]string

	if colorTTY {
		colorMap = map[Operation]string{
			Operation("close"): "\x1b[0m", // end color tag

			OpAdd:    "\x1b[32m", // green
			OpRemove: "\x1b[31m", // red
			OpChange: "\x1b[34m", // blue
		}
	}

	for _, d := range diffs {
		op := d.Operation()
		var valStr string
		switch op {
		case OpAdd:
			data, err := json.Marshal(d.After)
			if err != nil {
				return err
			}
			valStr = string(data)
		case OpRemove:
			data, err := json.Marshal(d.Before)
			if err != nil {
				return err
			}
			valStr = string(data)
		default:
			before, err := json.Marshal(d.Before)
			if err != nil {
				return err
			}
			after, err := json.Marshal(d.After)
			if err != nil {
				return err
			}
			valStr = string(before) + " => " + string(after)
		}
		fmt.Fprintf(w, "%s%s %s: %s%s\n", colorMap[op], op, displayPath(d.Path), valStr, colorMap[Operation("close")])
	}

	return nil
}

// displayPath substitutes a visible marker for the empty root path
func displayPath(path string) string {
	if path == "" {
		return "."
	}
	return path
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(st *Stats) string {
	return formatStats(st, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(st *Stats) string {
	return formatStats(st, true)
}

func formatStats(st *Stats, color bool) string {
	var (
		neutralColor, addColor, removeColor, changeColor, closeColor string
	)

	if st == nil {
		return "<nil>"
	}

	if color {
		neutralColor = "\x1b[37m"
		addColor = "\x1b[32m"
		removeColor = "\x1b[31m"
		changeColor = "\x1b[34m"
		closeColor = "\x1b[0m"
	}

	buf := &bytes.Buffer{}

	elsColor := addColor
	shift := st.NodeChange()
	nodesWord := "nodes"
	sign := "+"
	if shift < 0 {
		elsColor = removeColor
		sign = ""
	} else if shift == 0 {
		elsColor = neutralColor
		sign = ""
	}
	if shift == 1 || shift == -1 {
		nodesWord = "node"
	}

	buf.WriteString(fmt.Sprintf("%s%s%d %s%s%s%s.",
		elsColor, sign, shift, closeColor,
		neutralColor, nodesWord, closeColor,
	))

	addsWord := "additions"
	if st.Additions == 1 {
		addsWord = "addition"
	}
	buf.WriteString(fmt.Sprintf(" %s%d %s.%s", addColor, st.Additions, addsWord, closeColor))

	removalsWord := "removals"
	if st.Removals == 1 {
		removalsWord = "removal"
	}
	buf.WriteString(fmt.Sprintf(" %s%d %s.%s", removeColor, st.Removals, removalsWord, closeColor))

	changesWord := "changes"
	if st.Changes == 1 {
		changesWord = "change"
	}
	buf.WriteString(fmt.Sprintf(" %s%d %s.%s", changeColor, st.Changes, changesWord, closeColor))

	buf.WriteRune('\n')

	return buf.String()
}
