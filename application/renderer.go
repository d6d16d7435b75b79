package application

import (
	"fmt"
	"strings"

	"github.com/mvnup/mvnup/domain"
)

// infoPadSize is the column budget each report line is aligned to.
const infoPadSize = 72

// Renderer formats classification results into aligned left-label/right-value
// report lines, partitioned into "has updates" and "already current" buckets.
type Renderer struct {
	Project string // project artifactId shown in section headers
	Verbose bool
}

// Render returns the display lines for one report section. Buckets keep the
// original encounter order; each emitted block ends with a blank line.
func (r *Renderer) Render(results []domain.ClassificationResult, section string) []string {
	var withUpdates, usingCurrent []string
	for _, res := range results {
		left := "  " + res.Coordinate.Key() + " "
		right := " " + res.Current
		bucket := &usingCurrent
		if res.HasUpdate() {
			right = " " + res.Current + " -> " + res.Latest
			bucket = &withUpdates
		}
		if len(left)+len(right)+3 > infoPadSize {
			*bucket = append(*bucket, left+"...")
			*bucket = append(*bucket, leftPad(right, infoPadSize))
		} else {
			*bucket = append(*bucket, rightPad(left, infoPadSize-len(right), '.')+right)
		}
	}

	var lines []string
	if r.Verbose && len(usingCurrent) == 0 && len(withUpdates) > 0 {
		lines = append(lines,
			fmt.Sprintf("[%s]: No dependencies in %s are using the newest version.", r.Project, section),
			"")
	} else if r.Verbose && len(usingCurrent) > 0 {
		lines = append(lines,
			fmt.Sprintf("[%s]: The following dependencies in %s are using the newest version:", r.Project, section))
		lines = append(lines, usingCurrent...)
		lines = append(lines, "")
	}
	if len(withUpdates) == 0 && len(usingCurrent) > 0 {
		lines = append(lines,
			fmt.Sprintf("[%s]: No dependencies in %s have newer versions.", r.Project, section),
			"")
	} else if len(withUpdates) > 0 {
		lines = append(lines,
			fmt.Sprintf("[%s]: The following dependencies in %s have newer versions:", r.Project, section))
		lines = append(lines, withUpdates...)
		lines = append(lines, "")
	}
	return lines
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func rightPad(s string, width int, fill byte) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(string(fill), width-len(s))
}
