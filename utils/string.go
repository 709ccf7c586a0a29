package utils

// FormatBoolean renders a flag with caller-chosen labels, e.g. "Yes"/"No"
// in human-facing reports.
func FormatBoolean(yesno bool, yes string, no string) string {
	if yesno {
		return yes
	}
	return no
}
