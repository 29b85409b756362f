package fixedwidth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single catalog line; longer lines are a read error.
const maxLineBytes = 64 * 1024

// Result holds the rows that sliced cleanly and the lines that did not.
type Result struct {
	Rows     []Row
	Rejected []*RecordError
}

// Read applies layout to every non-blank line of r. Malformed lines are
// collected in Result.Rejected; only I/O failures are returned as errors.
func Read(r io.Reader, layout Layout) (*Result, error) {
	if len(layout.widths) == 0 {
		return nil, errors.New("read: layout has no columns")
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	res := &Result{}
	lineNo, seq := 0, 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := layout.Split(line)
		if err != nil {
			var recErr *RecordError
			if errors.As(err, &recErr) {
				recErr.Line, recErr.Seq = lineNo, seq
				res.Rejected = append(res.Rejected, recErr)
				seq++
				continue
			}
			return nil, err
		}
		row.Line, row.Seq = lineNo, seq
		res.Rows = append(res.Rows, row)
		seq++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	return res, nil
}
