package renderer

import (
	"github.com/fredcamaral/declaim/internal/domain/entities"
)

// BlockView is the serializable form of a block: the type tag plus
// whichever payload fields the variant carries. It is what the JSON API
// and the structured export formats emit.
type BlockView struct {
	Type     string   `json:"type" yaml:"type"`
	Content  string   `json:"content,omitempty" yaml:"content,omitempty"`
	Filename string   `json:"filename,omitempty" yaml:"filename,omitempty"`
	Language string   `json:"language,omitempty" yaml:"language,omitempty"`
	Runner   string   `json:"runner,omitempty" yaml:"runner,omitempty"`
	Classes  []string `json:"classes,omitempty" yaml:"classes,omitempty"`
}

// SlideView is the serializable form of a slide
type SlideView struct {
	ID     string      `json:"id,omitempty" yaml:"id,omitempty"`
	Index  int         `json:"index" yaml:"index"`
	Blocks []BlockView `json:"blocks" yaml:"blocks"`
}

// DeckView is the serializable form of a parsed deck
type DeckView struct {
	Title      string      `json:"title" yaml:"title"`
	SourcePath string      `json:"sourcePath,omitempty" yaml:"sourcePath,omitempty"`
	Slides     []SlideView `json:"slides" yaml:"slides"`
}

// NewDeckView converts a deck entity into its serializable view
func NewDeckView(deck *entities.Deck) DeckView {
	view := DeckView{
		Title:      deck.Title,
		SourcePath: deck.SourcePath,
		Slides:     make([]SlideView, 0, len(deck.Slides)),
	}

	for _, slide := range deck.Slides {
		sv := SlideView{
			ID:     slide.ID,
			Index:  slide.Index,
			Blocks: make([]BlockView, 0, len(slide.Blocks)),
		}
		for _, block := range slide.Blocks {
			sv.Blocks = append(sv.Blocks, newBlockView(block))
		}
		view.Slides = append(view.Slides, sv)
	}

	return view
}

// newBlockView maps one block variant to its view. The switch is
// exhaustive over the entities block variants.
func newBlockView(block entities.Block) BlockView {
	switch b := block.(type) {
	case entities.HTMLBlock:
		return BlockView{Type: string(entities.BlockTypeHTML), Content: b.Content}
	case entities.CodeBlock:
		return BlockView{
			Type:     string(entities.BlockTypeCode),
			Content:  b.Content,
			Filename: b.Filename,
			Language: b.Language,
			Runner:   b.Runner,
		}
	case entities.HeaderBlock:
		return BlockView{Type: string(entities.BlockTypeHeader), Content: b.Content}
	case entities.FooterBlock:
		return BlockView{Type: string(entities.BlockTypeFooter), Content: b.Content}
	case entities.CommentBlock:
		return BlockView{Type: string(entities.BlockTypeComment), Content: b.Content}
	case entities.CustomCSSBlock:
		return BlockView{Type: string(entities.BlockTypeCustomCSS), Content: b.Content}
	case entities.SlideBackgroundBlock:
		return BlockView{Type: string(entities.BlockTypeSlideBackground), Content: b.Content}
	case entities.GlobalBackgroundBlock:
		return BlockView{Type: string(entities.BlockTypeGlobalBackground), Content: b.Content}
	case entities.SlideClassesBlock:
		return BlockView{Type: string(entities.BlockTypeSlideClasses), Classes: b.Classes}
	case entities.ErrorBlock:
		return BlockView{Type: string(entities.BlockTypeError), Content: b.Content}
	default:
		return BlockView{Type: string(block.Type())}
	}
}
