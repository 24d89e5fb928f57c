package pagerank

import "fmt"

// BuildLinkMatrix converts labelled links into a LinkMatrix whose row and
// column order follows pages. Repeated links collapse into a single 1.
//
// Errors:
//   - ErrEmptyGraph (no pages), ErrDuplicatePage, ErrUnknownPage.
func BuildLinkMatrix(pages []string, links []Link) (LinkMatrix, error) {
	if len(pages) == 0 {
		return nil, pagerankErrorf(opBuildLinks, ErrEmptyGraph)
	}
	index := make(map[string]int, len(pages))
	for i, p := range pages {
		if _, dup := index[p]; dup {
			return nil, pagerankErrorf(opBuildLinks, fmt.Errorf("%q: %w", p, ErrDuplicatePage))
		}
		index[p] = i
	}

	l := make(LinkMatrix, len(pages))
	for i := range l {
		l[i] = make([]int, len(pages))
	}
	for _, lk := range links {
		from, ok := index[lk.From]
		if !ok {
			return nil, pagerankErrorf(opBuildLinks, fmt.Errorf("from %q: %w", lk.From, ErrUnknownPage))
		}
		to, ok := index[lk.To]
		if !ok {
			return nil, pagerankErrorf(opBuildLinks, fmt.Errorf("to %q: %w", lk.To, ErrUnknownPage))
		}
		l[to][from] = 1
	}

	return l, nil
}
