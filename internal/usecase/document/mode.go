package document

// FrontmatterMode controls when a saved body is parsed for metadata.
type FrontmatterMode string

// Frontmatter modes.
const (
	// ModeAuto parses the body only when it opens with a --- line.
	ModeAuto FrontmatterMode = "auto"
	// ModeRequired rejects bodies without a valid frontmatter block.
	ModeRequired FrontmatterMode = "required"
	// ModeOff never parses; metadata comes from the explicit request fields.
	ModeOff FrontmatterMode = "off"
)

// IsValid checks if the mode is one of the supported values.
func (m FrontmatterMode) IsValid() bool {
	return m == ModeAuto || m == ModeRequired || m == ModeOff
}
