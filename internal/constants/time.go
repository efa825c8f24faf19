package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DisplayDateFormat is the short date format used for chart axes and lists (e.g. "4 Mar")
	DisplayDateFormat = "2 Jan"
)
