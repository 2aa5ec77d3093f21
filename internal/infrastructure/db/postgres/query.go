package postgres

import (
	"fmt"
	"sort"
	"strings"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// queryableColumns is the closed allow-list for dynamic lookups. Predicate
// keys arrive from callers, so anything outside this set is rejected before
// a query is built. The password hash and OTP reference are deliberately
// absent.
var queryableColumns = map[string]struct{}{
	"id":             {},
	"firstname":      {},
	"lastname":       {},
	"middlename":     {},
	"fullname":       {},
	"username":       {},
	"email":          {},
	"account_status": {},
	"gender":         {},
	"date_of_birth":  {},
	"phone_number":   {},
}

// buildFindQuery turns a field=value predicate into SQL with every value
// bound as a parameter. Keys are sorted so the generated statement is
// deterministic. An unknown or empty predicate yields domain.ErrUnknownField
// without touching storage.
func buildFindQuery(predicate map[string]any) (string, []any, error) {
	if len(predicate) == 0 {
		return "", nil, fmt.Errorf("%w: empty predicate", domain.ErrUnknownField)
	}

	keys := make([]string, 0, len(predicate))
	for key := range predicate {
		if _, ok := queryableColumns[key]; !ok {
			return "", nil, fmt.Errorf("%w: %q", domain.ErrUnknownField, key)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(userColumns)
	sb.WriteString(" FROM user_information WHERE ")

	args := make([]any, 0, len(keys))
	for i, key := range keys {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		fmt.Fprintf(&sb, "%s = $%d", key, i+1)
		args = append(args, predicate[key])
	}

	return sb.String(), args, nil
}
