package common

// Constants used across the cowtrie packages.
const (
	ReplacerPolicyLRUK string = "lru_k"
	ReplacerPolicyLRU  string = "lru"

	CatalogPolicyLocal string = "local_snapshot"
)

// OpType values for catalog batches.
const (
	OpStore  OpType = 0
	OpDelete        = 1
)
