package governance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/hr-copilot/internal/types"
)

// PolicyReport renders the active governance policy as an audit summary:
// the role/action matrix, the redaction placeholders, and the advisory
// detector inventories. This is what the governance worker returns; it
// reads the live tables, so the report can never drift from enforcement.
func PolicyReport() string {
	var sb strings.Builder

	sb.WriteString("Access policy (role: permitted actions):\n")
	roles := make([]string, 0, len(allowedActions))
	for role := range allowedActions {
		roles = append(roles, string(role))
	}
	sort.Strings(roles)
	for _, role := range roles {
		actions := make([]string, 0, len(allowedActions[types.Role(role)]))
		for action := range allowedActions[types.Role(role)] {
			actions = append(actions, string(action))
		}
		sort.Strings(actions)
		sb.WriteString(fmt.Sprintf("- %s: %s\n", role, strings.Join(actions, ", ")))
	}

	sb.WriteString(fmt.Sprintf("\nPII redaction: emails become %s, phone numbers become %s. Applied to every outgoing answer.\n", RedactedEmail, RedactedPhone))
	sb.WriteString(fmt.Sprintf("\nBias detector: %d sensitive terms monitored (advisory, never blocks).\n", len(biasTriggers)))
	sb.WriteString(fmt.Sprintf("Risk detector: %d absolute-certainty markers monitored (advisory).", len(overconfidenceMarkers)))

	return sb.String()
}
