package spelldraft

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-spellwizard/internal/redis"
	"github.com/KirkDiggler/rpg-spellwizard/internal/schema"
)

// AuditOptions controls what AuditRedis repairs
type AuditOptions struct {
	// DeleteCorrupted removes documents that fail to decode or validate
	DeleteCorrupted bool
	// RebuildIndex re-adds every valid spell to its owner's index set
	RebuildIndex bool
}

// CorruptedSpell is a stored document that could not be used
type CorruptedSpell struct {
	Key    string
	Reason string
}

// AuditReport summarizes an audit run
type AuditReport struct {
	Checked   int
	Corrupted []CorruptedSpell
	Deleted   []string
	Reindexed int
}

// AuditRedis scans every spell document in Redis and checks it against the spell schema
func AuditRedis(ctx context.Context, client redisclient.Client, opts AuditOptions) (*AuditReport, error) {
	report := &AuditReport{}

	iter := client.Scan(ctx, 0, spell.EntityType+":*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, ownerKeyPrefix) {
			continue
		}
		report.Checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			report.Corrupted = append(report.Corrupted, CorruptedSpell{Key: key, Reason: err.Error()})
			continue
		}

		if err := schema.ValidateSpellJSON(data); err != nil {
			report.Corrupted = append(report.Corrupted, CorruptedSpell{Key: key, Reason: errors.GetMessage(err)})
			continue
		}

		var s spell.Spell
		if err := json.Unmarshal(data, &s); err != nil {
			report.Corrupted = append(report.Corrupted, CorruptedSpell{Key: key, Reason: err.Error()})
			continue
		}
		if s.ID == "" || s.OwnerID == "" || spellKey(s.ID) != key {
			report.Corrupted = append(report.Corrupted, CorruptedSpell{Key: key, Reason: "document ID or owner does not match its key"})
			continue
		}

		if opts.RebuildIndex {
			if err := client.SAdd(ctx, ownerKey(s.OwnerID), s.ID).Err(); err != nil {
				return nil, errors.Wrapf(err, "failed to index spell %s", s.ID)
			}
			report.Reindexed++
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan spells")
	}

	if opts.DeleteCorrupted {
		for _, c := range report.Corrupted {
			if err := client.Del(ctx, c.Key).Err(); err != nil {
				return nil, errors.Wrapf(err, "failed to delete %s", c.Key)
			}
			report.Deleted = append(report.Deleted, c.Key)
		}
	}

	return report, nil
}
