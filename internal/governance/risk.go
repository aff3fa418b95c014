package governance

import "strings"

// CheckOK marks a clean governance pass.
const CheckOK = "OK"

// overconfidenceMarkers flag absolute-certainty language that an HR answer
// should never carry.
var overconfidenceMarkers = []string{"guarantee", "100%"}

// CheckRisk scans text for overconfident phrasing. Returns CheckOK or a
// named risk warning. Advisory only.
func CheckRisk(text string) string {
	t := strings.ToLower(text)
	for _, marker := range overconfidenceMarkers {
		if strings.Contains(t, marker) {
			return "Risk: overconfident claim detected."
		}
	}
	return CheckOK
}
