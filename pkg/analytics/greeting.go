package analytics

// GreetingError is returned in place of a greeting when the reference
// timestamp cannot be parsed. The dashboard shows it as-is instead of
// failing.
const GreetingError = "Error: invalid date"

// Greeting picks a time-of-day greeting from the hour of the reference
// timestamp: morning [6,12), afternoon [12,18), evening [18,23), night
// otherwise.
func (a *Analyzer) Greeting(currentDate string) string {
	ref, err := parseReference(currentDate)
	if err != nil {
		a.logger.Error("cannot derive greeting", "reference", currentDate, "error", err)
		return GreetingError
	}

	hour := ref.Hour()
	switch {
	case hour >= 6 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 18:
		return "Good afternoon"
	case hour >= 18 && hour < 23:
		return "Good evening"
	default:
		return "Good night"
	}
}
