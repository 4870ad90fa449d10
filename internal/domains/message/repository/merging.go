package repository

import (
	"sort"

	"portfolio-backend/internal/domains/message"
)

// MergeByID implements the reconciliation precedence rule: local
// entries are inserted first, then remote entries overwrite on shared
// ids. Remote is authoritative per id; ids present only locally
// survive (offline submissions not yet synced). The result is sorted
// by createdAt descending, ties broken by id so the order is stable.
func MergeByID(local, remote []message.ContactMessage) []message.ContactMessage {
	byID := make(map[string]message.ContactMessage, len(local)+len(remote))
	for _, m := range local {
		byID[m.ID] = m
	}
	for _, m := range remote {
		byID[m.ID] = m
	}

	merged := make([]message.ContactMessage, 0, len(byID))
	for _, m := range byID {
		merged = append(merged, m)
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].CreatedAt != merged[j].CreatedAt {
			return merged[i].CreatedAt > merged[j].CreatedAt
		}
		return merged[i].ID > merged[j].ID
	})

	return merged
}
