package solution

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// objectivePattern matches the claimed objective inside a comment line:
// "# cost: 10.5", "# cost 10.5" and "# Objective value = 10.5" all count.
var objectivePattern = regexp.MustCompile(`(?i)(?:cost|objective value)[\s:=]+(-?\d+(?:\.\d+)?)`)

// Parse reads a solution file from r: an optional objective comment and
// "<tail> <head> <net>" rows, 1-based in the file and normalized to
// 0-based here. Comment lines, blank lines and rows with fewer than
// three fields are skipped.
func Parse(r io.Reader) (*Record, error) {
	rec := &Record{}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			// First objective-looking comment wins.
			if rec.Objective == nil {
				if m := objectivePattern.FindStringSubmatch(line); m != nil {
					v, err := strconv.ParseFloat(m[1], 64)
					if err == nil {
						rec.Objective = &v
					}
				}
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		tail, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("solution: arc row %q: %w", line, err)
		}
		head, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("solution: arc row %q: %w", line, err)
		}
		net, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("solution: arc row %q: %w", line, err)
		}
		rec.UsedArcs = append(rec.UsedArcs, UsedArc{Tail: tail - 1, Head: head - 1, Net: net - 1})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("solution: %w", err)
	}

	return rec, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("solution: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
