package taxonomy

// DisplayName returns the human-readable name used in text output.
func (k Kind) DisplayName() string {
	name, ok := displayNames[k]
	if !ok {
		return string(k)
	}
	return name
}

var displayNames = map[Kind]string{
	PerfectNumber:  "Perfect number",
	PrimeNumber:    "Prime number",
	Convergent:     "Convergent",
	AmicableNumber: "Amicable number",
	SociableNumber: "Sociable number",
	AspiringNumber: "Aspiring number",
	IntoCycle:      "Convergent into cycle",
	Unknown:        "Unknown sequence",
}
