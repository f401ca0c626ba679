// flags.go defines constants for CLI flag names shared by extensions.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag.

package extension

const (
	// Boolean flags

	FlagLocal = "local" // Use local config scope
	FlagOff   = "off"   // Switch a tag off instead of on
	FlagRow   = "row"   // Render toggles side by side

	// String flags

	FlagTag    = "tag"    // Tag value (repeatable for format)
	FlagToggle = "toggle" // Tag to toggle in panel
)
