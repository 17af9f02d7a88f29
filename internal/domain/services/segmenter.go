package services

import (
	"regexp"
	"strings"
)

// SegmentKind identifies the shape of a raw text segment.
type SegmentKind int

const (
	// SegmentSeparator is a line consisting exactly of the slide-break token.
	SegmentSeparator SegmentKind = iota
	// SegmentDirective is a line issuing a !command.
	SegmentDirective
	// SegmentProse is a maximal run of lines matching neither special shape.
	SegmentProse
)

// Segment is a contiguous piece of raw deck text, not yet classified.
type Segment struct {
	Kind SegmentKind
	Text string
}

// separatorToken is the literal slide-break line.
const separatorToken = "---"

// directiveLine matches a full line of the form "!<cmd> <arg> ...": a
// non-whitespace command name, one space, a non-whitespace first argument,
// then anything. Lines like "!header" with no argument are prose.
var directiveLine = regexp.MustCompile(`^!(\S+) (\S+.*)$`)

// segmentText splits raw deck text into an ordered sequence of segments.
// Both special shapes are recognized only when they occupy an entire
// physical line; whitespace-only stretches between them are dropped.
func segmentText(text string) []Segment {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var segments []Segment
	var run []string

	flush := func() {
		if len(run) == 0 {
			return
		}
		prose := strings.Join(run, "\n")
		run = nil
		if strings.TrimSpace(prose) == "" {
			return
		}
		segments = append(segments, Segment{Kind: SegmentProse, Text: prose})
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case line == separatorToken:
			flush()
			segments = append(segments, Segment{Kind: SegmentSeparator})
		case directiveLine.MatchString(line):
			flush()
			segments = append(segments, Segment{Kind: SegmentDirective, Text: line})
		default:
			run = append(run, line)
		}
	}
	flush()

	return segments
}
