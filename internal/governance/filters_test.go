package governance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactPII_Email(t *testing.T) {
	out := RedactPII("reach me at jane.doe@example.com for details")
	assert.NotContains(t, out, "example.com")
	assert.NotContains(t, out, "jane.doe")
	assert.Contains(t, out, RedactedEmail)
}

func TestRedactPII_Phone(t *testing.T) {
	tests := []string{
		"call +62 812-3456-7890 today",
		"phone: (555) 123-4567 88",
		"contact 081234567890",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			out := RedactPII(in)
			assert.Contains(t, out, RedactedPhone)
			assert.NotContains(t, out, "3456")
		})
	}
}

func TestRedactPII_Idempotent(t *testing.T) {
	in := "email me at test@example.com or call +62 812-3456-7890"
	once := RedactPII(in)
	twice := RedactPII(once)
	assert.Equal(t, once, twice)
}

func TestRedactPII_CleanTextUnchanged(t *testing.T) {
	in := "Candidate 12 matched python and sql."
	assert.Equal(t, in, RedactPII(in))
}

func TestCheckBias(t *testing.T) {
	assert.Equal(t, CheckOK, CheckBias("candidate knows python and sql"))

	warn := CheckBias("Looking for a young male engineer")
	assert.Contains(t, warn, "Bias warning")
	assert.Contains(t, warn, "male")
	assert.Contains(t, warn, "young")
}

func TestCheckBias_DeduplicatedSorted(t *testing.T) {
	warn := CheckBias("young and young again, gender and age, AGE")
	assert.Contains(t, warn, "Bias warning")
	// Terms appear once each, in sorted order.
	assert.Equal(t, 1, strings.Count(warn, "young"))
	assert.Less(t, strings.Index(warn, "age"), strings.Index(warn, "gender"))
	assert.Less(t, strings.Index(warn, "gender"), strings.Index(warn, "young"))
}

func TestCheckRisk(t *testing.T) {
	assert.Equal(t, CheckOK, CheckRisk("this candidate looks promising"))
	assert.Contains(t, CheckRisk("I guarantee this hire will work out"), "Risk")
	assert.Contains(t, CheckRisk("100% certain match"), "Risk")
}

func TestPolicyReport(t *testing.T) {
	report := PolicyReport()

	assert.Contains(t, report, "Access policy")
	for _, role := range []string{"guest", "manager", "hr", "recruiter", "admin"} {
		assert.Contains(t, report, role)
	}
	assert.Contains(t, report, RedactedEmail)
	assert.Contains(t, report, RedactedPhone)
	// The report itself must not trip the risk detector.
	assert.Equal(t, CheckOK, CheckRisk(report))
}
