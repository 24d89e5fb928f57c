// Package pagerank: sentinel errors. Shape errors reuse the matrix sentinels.
package pagerank

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGraph is returned for a link matrix with no pages.
	ErrEmptyGraph = errors.New("pagerank: empty link matrix")

	// ErrNonBinaryLink is returned when a link matrix entry is neither 0 nor 1.
	ErrNonBinaryLink = errors.New("pagerank: link entries must be 0 or 1")

	// ErrBadTeleport is returned when ρ is outside [0, 1] or not finite.
	ErrBadTeleport = errors.New("pagerank: teleport probability must be in [0,1]")

	// ErrDanglingNode is returned under DanglingReject for a page without
	// outbound links (an all-zero column).
	ErrDanglingNode = errors.New("pagerank: page has no outbound links")

	// ErrUnknownPage is returned by BuildLinkMatrix for a link endpoint that
	// is not among the pages.
	ErrUnknownPage = errors.New("pagerank: unknown page")

	// ErrDuplicatePage is returned by BuildLinkMatrix when a label repeats.
	ErrDuplicatePage = errors.New("pagerank: duplicate page label")
)

// Operation tags for error wrapping.
const (
	opBuildTransition = "BuildTransitionMatrix"
	opRank            = "Rank"
	opSortedLabels    = "SortedLabels"
	opBuildLinks      = "BuildLinkMatrix"
)

// pagerankErrorf wraps err with an operation tag, preserving it for errors.Is.
func pagerankErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
