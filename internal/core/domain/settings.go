package domain

// Settings are the user's persistent preferences. Environment variables
// override them, command-line flags override both.
type Settings struct {
	// SourcePath is the contact source file.
	SourcePath string

	// LocalPlace names the place phone numbers are rendered relative to.
	LocalPlace string

	// DefaultReport is used when no report is named on the command line.
	DefaultReport string
}
