package entities

// BlockType identifies the concrete variant of a Block.
type BlockType string

const (
	BlockTypeHTML             BlockType = "html"
	BlockTypeCode             BlockType = "code"
	BlockTypeHeader           BlockType = "header"
	BlockTypeFooter           BlockType = "footer"
	BlockTypeComment          BlockType = "comment"
	BlockTypeCustomCSS        BlockType = "custom_css"
	BlockTypeSlideBackground  BlockType = "slide_background"
	BlockTypeGlobalBackground BlockType = "global_background"
	BlockTypeSlideClasses     BlockType = "slide_classes"
	BlockTypeError            BlockType = "error"

	// BlockTypeSeparator marks a slide boundary. Separator blocks are
	// consumed during partitioning and never appear in a finished deck.
	BlockTypeSeparator BlockType = "separator"
)

// Block is a single typed unit of slide content. The concrete variants are
// the structs below; a type switch over them is exhaustive.
type Block interface {
	Type() BlockType
}

// HTMLBlock is a prose run rendered to HTML by the markdown converter.
type HTMLBlock struct {
	Content string
}

func (HTMLBlock) Type() BlockType { return BlockTypeHTML }

// CodeBlock is an externally loaded code sample plus its display metadata.
type CodeBlock struct {
	// Content is the loaded file text.
	Content string

	// Filename is the resolved absolute path the content was loaded from.
	Filename string

	// Language is the syntax-highlighting language identifier.
	Language string

	// Runner is the interpreter or tool used to execute the sample.
	Runner string
}

func (CodeBlock) Type() BlockType { return BlockTypeCode }

// HeaderBlock carries free text shown above subsequent slide content.
type HeaderBlock struct {
	Content string
}

func (HeaderBlock) Type() BlockType { return BlockTypeHeader }

// FooterBlock carries free text shown below subsequent slide content.
type FooterBlock struct {
	Content string
}

func (FooterBlock) Type() BlockType { return BlockTypeFooter }

// CommentBlock carries author-only text that never renders as visible output.
type CommentBlock struct {
	Content string
}

func (CommentBlock) Type() BlockType { return BlockTypeComment }

// CustomCSSBlock names a stylesheet to attach to the deck.
type CustomCSSBlock struct {
	Content string
}

func (CustomCSSBlock) Type() BlockType { return BlockTypeCustomCSS }

// SlideBackgroundBlock sets the background for the slide it appears on.
type SlideBackgroundBlock struct {
	Content string
}

func (SlideBackgroundBlock) Type() BlockType { return BlockTypeSlideBackground }

// GlobalBackgroundBlock sets the background for the whole deck.
type GlobalBackgroundBlock struct {
	Content string
}

func (GlobalBackgroundBlock) Type() BlockType { return BlockTypeGlobalBackground }

// SlideClassesBlock carries CSS class names to apply to the slide element.
type SlideClassesBlock struct {
	Classes []string
}

func (SlideClassesBlock) Type() BlockType { return BlockTypeSlideClasses }

// ErrorBlock is a user-facing diagnostic embedded where broken content
// would have been. Content is display text, never structured data.
type ErrorBlock struct {
	Content string
}

func (ErrorBlock) Type() BlockType { return BlockTypeError }

// SeparatorBlock is the slide-break marker emitted by the classifier and
// consumed by the partitioner.
type SeparatorBlock struct{}

func (SeparatorBlock) Type() BlockType { return BlockTypeSeparator }
