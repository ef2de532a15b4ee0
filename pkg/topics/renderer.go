package topics

// Renderer formats topic content for display
type Renderer interface {
	// Render takes raw content and returns formatted content.
	// format is the file extension of the topic, e.g. ".md"
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
