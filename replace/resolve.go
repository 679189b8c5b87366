package replace

import "fmt"

// Resolve checks every group reference in t against captures, the group
// names of a pattern in engine order with "" for unnamed groups, and returns
// the segments with names replaced by their group numbers.
func (t *Template) Resolve(captures []string) ([]Segment, error) {
	out := make([]Segment, 0, len(t.Segments))
	for _, s := range t.Segments {
		switch s.Kind {
		case KindIndex:
			if s.Index > len(captures) {
				return nil, fmt.Errorf("group $%d out of range: pattern has %d groups", s.Index, len(captures))
			}
		case KindName:
			idx := indexOf(captures, s.Name)
			if idx == 0 {
				return nil, fmt.Errorf("group %q not found in pattern", s.Name)
			}
			s = Segment{Kind: KindIndex, Index: idx}
		}
		out = append(out, s)
	}
	return out, nil
}

func indexOf(captures []string, name string) int {
	for i, c := range captures {
		if c == name {
			return i + 1
		}
	}
	return 0
}
