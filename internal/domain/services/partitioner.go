package services

import "github.com/fredcamaral/declaim/internal/domain/entities"

// partition splits a flat, recursion-resolved block sequence into slides
// at separator markers. Separators are consumed; groups left empty by
// leading, trailing, or doubled separators are discarded. Equivalent to:
// split at every separator, drop separators, drop empty groups, preserve
// order.
func partition(blocks []entities.Block) []entities.Slide {
	var slides []entities.Slide
	var current []entities.Block

	closeSlide := func() {
		if len(current) > 0 {
			slides = append(slides, entities.Slide{Blocks: current})
		}
		current = nil
	}

	for _, b := range blocks {
		if b.Type() == entities.BlockTypeSeparator {
			closeSlide()
			continue
		}
		current = append(current, b)
	}
	closeSlide()

	return slides
}
