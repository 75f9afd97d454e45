package analysis

import "github.com/limenime/limeass/ast"

// Overlap is one pair of events on the same layer whose display windows
// intersect (spec §4.6 "Timing overlap graph").
type Overlap struct {
	A, B int // indices into the owning Events.Records
}

// TimingOverlaps computes the overlap graph for script's [Events] section.
// Comment events are excluded from collision resolution (spec §9 Open
// Question 3).
func TimingOverlaps(script *ast.Script) []Overlap {
	var events *ast.Events
	for _, sec := range script.Sections {
		if sec.Kind.Kind == ast.SectionEvents && sec.Events != nil {
			events = sec.Events
		}
	}
	if events == nil {
		return nil
	}

	var overlaps []Overlap
	recs := events.Records
	for i := 0; i < len(recs); i++ {
		if recs[i].Type == ast.Comment {
			continue
		}
		for j := i + 1; j < len(recs); j++ {
			if recs[j].Type == ast.Comment {
				continue
			}
			if !sameLayer(script.Source, recs[i], recs[j]) {
				continue
			}
			if intervalsOverlap(recs[i], recs[j]) {
				overlaps = append(overlaps, Overlap{A: i, B: j})
			}
		}
	}
	return overlaps
}

func sameLayer(src []byte, a, b ast.Event) bool {
	return a.Layer.Text(src) == b.Layer.Text(src)
}

func intervalsOverlap(a, b ast.Event) bool {
	if !a.Start.Valid || !a.End.Valid || !b.Start.Valid || !b.End.Valid {
		return false
	}
	return a.Start.Centiseconds < b.End.Centiseconds && b.Start.Centiseconds < a.End.Centiseconds
}
