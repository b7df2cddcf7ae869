// internal/identity/plclog.go
package identity

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dsablic/skylens/internal/model"
)

// Operation is one entry of the identity's PLC operation log.
type Operation struct {
	CreatedAt time.Time `json:"createdAt"`
	Operation struct {
		RotationKeys []string `json:"rotationKeys"`
		AlsoKnownAs  []string `json:"alsoKnownAs"`
	} `json:"operation"`
}

// AuditLog fetches the identity's full operation log from the PLC
// directory. The source does not guarantee ordering.
func (r *Resolver) AuditLog(ctx context.Context, did string) ([]Operation, error) {
	var ops []Operation
	if err := r.Client.GetJSON(ctx, r.PLCURL+"/"+did+"/log/audit", &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

// SummarizeLog replays the operation log in ascending chronological
// order. Rotation-key and current-alias counts come from the latest
// operation only; the historical alias set is the union across all
// operations, so aliases dropped later still appear.
func SummarizeLog(ops []Operation) model.LogSummary {
	if len(ops) == 0 {
		return model.LogSummary{}
	}

	sorted := make([]Operation, len(ops))
	copy(sorted, ops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	seen := map[string]bool{}
	for _, op := range sorted {
		for _, aka := range op.Operation.AlsoKnownAs {
			seen[strings.TrimPrefix(aka, "at://")] = true
		}
	}

	all := make([]string, 0, len(seen))
	for alias := range seen {
		all = append(all, alias)
	}
	sort.Strings(all)

	summary := model.LogSummary{
		AllAliases: all,
	}
	for _, alias := range all {
		if strings.Contains(alias, model.DefaultDomain) {
			summary.BskyAliasCount++
		} else {
			summary.CustomAliasCount++
		}
	}

	latest := sorted[len(sorted)-1]
	summary.RotationKeyCount = len(latest.Operation.RotationKeys)
	summary.CurrentAliasCount = len(latest.Operation.AlsoKnownAs)
	return summary
}

// CreationTime returns the timestamp of the earliest operation, used as
// a fallback for the account creation date when the profile is missing.
func CreationTime(ops []Operation) time.Time {
	var earliest time.Time
	for _, op := range ops {
		if earliest.IsZero() || op.CreatedAt.Before(earliest) {
			earliest = op.CreatedAt
		}
	}
	return earliest
}
