package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	urnScheme = "urn"
	urnSystem = "singine"

	tokenLen   = 8
	maxHintLen = 16
)

// Record is a minted identifier. Inode is the namespace-scoped counter value
// issued with it; gaps between issued and used inodes are acceptable.
type Record struct {
	LocalID string `json:"gen_id"`
	URN     string `json:"urn"`
	Inode   uint64 `json:"inode"`
}

// CounterStore is the durable per-namespace counter behind the issuer.
//
// NextInode atomically creates the namespace's counter row if absent,
// increments it, and returns the pre-increment value. Two concurrent callers
// against the same namespace must never observe the same value, across
// goroutines and across processes sharing one store.
type CounterStore interface {
	NextInode(ctx context.Context, namespace string) (uint64, error)
}

// Issuer mints identifier records against a CounterStore.
type Issuer struct {
	counters CounterStore
}

// NewIssuer creates an Issuer backed by the given counter store.
func NewIssuer(counters CounterStore) *Issuer {
	return &Issuer{counters: counters}
}

// Mint issues a new identifier in the given namespace. The local id embeds
// the namespace, an 8-character random token (collision probability treated
// as negligible, not deduplicated against existing ids) and, when hint is
// non-empty, a sanitized version of the hint as a third dash-joined segment.
//
// Exactly one durable row mutation happens per call; no other state is
// touched. A failure to read or update the counter is surfaced as-is.
func (i *Issuer) Mint(ctx context.Context, namespace string, hint string) (*Record, error) {
	inode, err := i.counters.NextInode(ctx, namespace)
	if err != nil {
		return nil, fmt.Errorf("next inode for namespace %q: %w", namespace, err)
	}

	token := uuid.NewString()[:tokenLen]
	localID := namespace + "-" + token
	if hint != "" {
		localID += "-" + SanitizeHint(hint)
	}

	return &Record{
		LocalID: localID,
		URN:     fmt.Sprintf("%s:%s:%s:%s", urnScheme, urnSystem, namespace, localID),
		Inode:   inode,
	}, nil
}

// SanitizeHint keeps ASCII letters, digits and '-', replaces every other rune
// with '_', and truncates the result to 16 runes.
func SanitizeHint(hint string) string {
	var b strings.Builder
	n := 0
	for _, r := range hint {
		if n == maxHintLen {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
		n++
	}
	return b.String()
}

// ResolveURN extracts the local id from a URN of the form
// urn:singine:<namespace>:<localID>. It returns false for any string that
// does not match that shape. Malformed input is an expected absence, not an
// error; resolution is total over all string inputs.
func ResolveURN(urn string) (string, bool) {
	parts := strings.SplitN(urn, ":", 4)
	if len(parts) != 4 || parts[0] != urnScheme || parts[1] != urnSystem {
		return "", false
	}
	return parts[3], true
}
