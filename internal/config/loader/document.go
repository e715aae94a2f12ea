package loader

// Document mirrors the TOML layout of a scene file. Optional values are
// pointers so an absent key can be told apart from a zero value. Fields tagged
// env_interpolation may reference environment variables as ${NAME} or
// ${NAME:default}.
type Document struct {
	Version string       `toml:"version"`
	Timing  TimingTable  `toml:"timing"`
	Trigger TriggerTable `toml:"trigger"`
	Scenes  []SceneTable `toml:"scenes"  env_interpolation:"yes"`
}

// TimingTable holds delays as Go duration strings such as "20ms".
type TimingTable struct {
	CommandCharDelay  *string `toml:"command_char_delay"`
	StartCommandDelay *string `toml:"start_command_delay"`
	ApplyCommandDelay *string `toml:"apply_command_delay"`
	OutputLineDelay   *string `toml:"output_line_delay"`
}

// TriggerTable configures when playback starts.
type TriggerTable struct {
	MobileBreakpoint *int64 `toml:"mobile_breakpoint"`
}

// SceneTable is one named script bound to a render target.
type SceneTable struct {
	Name   string      `toml:"name"`
	Path   string      `toml:"path"   env_interpolation:"yes"`
	Target string      `toml:"target" env_interpolation:"yes"`
	Timing TimingTable `toml:"timing"`
	Lines  []LineTable `toml:"lines"  env_interpolation:"yes"`
}

// LineTable sets exactly one of Command or Output.
type LineTable struct {
	Command *string `toml:"command" env_interpolation:"yes"`
	Output  *string `toml:"output"  env_interpolation:"yes"`
}
