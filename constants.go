package cowtrie

// Constants used in the catalog.
const (
	tableKeyPrefix string = "table/"
	nextOIDKey     string = "meta/next_oid"
	oidKeyPrefix   string = "meta/oid/"

	firstTableOID uint32 = 1
)
