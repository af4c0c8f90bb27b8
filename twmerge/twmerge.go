// Package twmerge wires github.com/tylantz/go-tailwind-merge up as the
// class-conflict resolver for styled components.
//
// The underlying merger resolves utility-class conflicts the way a browser
// would not: the last conflicting token in the class string wins, so
// instance-supplied classes override configuration-derived ones regardless
// of stylesheet order.
//
//	merger := twmerge.New()
//	button := styled.MustNew(styled.Tag("button"), styled.Config{
//		Base:    styled.Props{"class": "p-2"},
//		Classes: merger,
//	})
package twmerge

import (
	"io"

	merge "github.com/tylantz/go-tailwind-merge"

	"github.com/yacobolo/styled"
)

// The tylantz merger satisfies styled.ClassMerger directly.
var _ styled.ClassMerger = (*merge.Merger)(nil)

// New returns a conflict-resolving class merger preconfigured with the
// default tailwind rules. The result satisfies styled.ClassMerger.
func New() *merge.Merger {
	return merge.NewMerger(nil, true)
}

// NewWithRules returns a merger extended with additional CSS rules (e.g. a
// project stylesheet with custom utilities) read from r.
func NewWithRules(r io.Reader) *merge.Merger {
	merger := merge.NewMerger(nil, true)
	merger.AddRules(r, false)
	return merger
}
