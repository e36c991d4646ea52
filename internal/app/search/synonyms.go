package search

import (
	"sort"
	"strings"
)

// SynonymTable maps lower-cased AWS service abbreviations to alternative
// search terms. It is passed in rather than read from a package global
// so callers can swap it in tests or configs.
type SynonymTable map[string][]string

// DefaultSynonyms is the production table.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"ec2":        {"elastic compute cloud", "compute", "virtual machine", "vm"},
		"s3":         {"simple storage service", "object storage", "storage", "bucket"},
		"rds":        {"relational database service", "database", "db", "sql"},
		"lambda":     {"serverless", "function", "faas"},
		"vpc":        {"virtual private cloud", "network", "networking"},
		"iam":        {"identity and access management", "permission", "access control"},
		"sqs":        {"simple queue service", "queue", "messaging"},
		"sns":        {"simple notification service", "notification", "pub sub"},
		"ecs":        {"elastic container service", "container", "docker"},
		"eks":        {"elastic kubernetes service", "kubernetes", "k8s"},
		"ebs":        {"elastic block store", "block storage", "volume", "disk"},
		"cloudfront": {"cdn", "content delivery network", "distribution"},
		"dynamodb":   {"nosql", "key value store", "document database"},
		"route53":    {"dns", "domain", "name resolution"},
		"cloudwatch": {"monitoring", "metrics", "logs", "observability"},
	}
}

// maxAlternatives caps the alternative term list.
const maxAlternatives = 5

// Alternatives expands a query through the table in both directions:
// a key match emits its values; a substring match against any value
// (either direction) emits that value's key plus its sibling values.
// The query itself is excluded and the result is deduplicated.
func (t SynonymTable) Alternatives(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []string
	seen := map[string]bool{q: true}
	add := func(term string) {
		if len(out) >= maxAlternatives || seen[term] {
			return
		}
		seen[term] = true
		out = append(out, term)
	}

	if values, ok := t[q]; ok {
		for _, v := range values {
			add(v)
		}
	}
	// iterate keys in sorted order so the capped list is deterministic
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		values := t[key]
		for _, v := range values {
			if strings.Contains(v, q) || strings.Contains(q, v) {
				add(key)
				for _, sibling := range values {
					add(sibling)
				}
				break
			}
		}
	}
	return out
}
