// Package target defines the sinks an animation is rendered into and provides
// an in-memory HTML buffer, an ANSI terminal sink and a registry of mounted
// targets.
package target

// Target receives markup during playback. Implementations only ever grow their
// content; nothing already appended is rewritten, except for the cursor marker
// of a command slot.
type Target interface {
	// Append adds markup after everything appended so far.
	Append(markup string)

	// OpenCommand appends an empty command slot showing the cursor and returns
	// a handle to it.
	OpenCommand() CommandSlot

	// Content returns the current markup.
	Content() string

	// Clear removes all content.
	Clear()
}

// CommandSlot is a command element that is still being typed.
type CommandSlot interface {
	// Type appends text inside the command element.
	Type(text string)

	// Apply removes the cursor marker. The slot keeps its text.
	Apply()
}
