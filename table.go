package cowtrie

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"cowtrie/common"

	"github.com/golang/glog"
)

// TableInfo -- catalog entry describing a table.
type TableInfo struct {
	OID       uint32    `mapstructure:"oid"`
	Name      string    `mapstructure:"name"`
	Columns   []string  `mapstructure:"columns"`
	CreatedAt time.Time `mapstructure:"created_at"`
}

func (ti TableInfo) String() string {
	return fmt.Sprintf("table %s (oid: %d, columns: %v)", ti.Name, ti.OID, ti.Columns)
}

func tableKey(name string) string {
	return tableKeyPrefix + name
}

// oidKey -- index entry mapping an OID to the name of the table holding it.
func oidKey(oid uint32) string {
	return oidKeyPrefix + strconv.FormatUint(uint64(oid), 10)
}

// addTables -- stores infos in t, assigning OIDs from the counter kept in
// the trie itself so allocation is part of the same snapshot. An explicit OID
// must be unused and below MaxUint32, which keeps the counter from wrapping
// back to 0.
func addTables(t Trie, infos []TableInfo) (Trie, []TableInfo, error) {
	oid := firstTableOID
	if next := Get[uint32](t, nextOIDKey); next != nil {
		oid = *next
	}
	created := make([]TableInfo, 0, len(infos))
	for _, info := range infos {
		if info.Name == "" {
			return t, nil, fmt.Errorf("%w: empty table name", common.ErrInvalidParam)
		}
		if Get[TableInfo](t, tableKey(info.Name)) != nil {
			glog.Errorf("table %s already exists", info.Name)
			return t, nil, fmt.Errorf("%w: table %s", common.ErrExists, info.Name)
		}
		if info.OID == math.MaxUint32 {
			glog.Errorf("table %s: oid %d out of range", info.Name, info.OID)
			return t, nil, fmt.Errorf("%w: table %s oid %d", common.ErrInvalidParam,
				info.Name, info.OID)
		}
		if info.OID == 0 {
			if oid == math.MaxUint32 {
				glog.Errorf("table %s: oid space exhausted", info.Name)
				return t, nil, fmt.Errorf("%w: no free oid for table %s",
					common.ErrInvalidParam, info.Name)
			}
			info.OID = oid
		}
		if owner := Get[string](t, oidKey(info.OID)); owner != nil {
			glog.Errorf("oid %d already used by table %s", info.OID, *owner)
			return t, nil, fmt.Errorf("%w: oid %d (table %s)", common.ErrExists,
				info.OID, *owner)
		}
		if info.OID >= oid {
			oid = info.OID + 1
		}
		if info.CreatedAt.IsZero() {
			info.CreatedAt = time.Now().UTC()
		}
		info.Columns = append([]string(nil), info.Columns...)
		t = Put(t, tableKey(info.Name), info)
		t = Put(t, oidKey(info.OID), info.Name)
		created = append(created, info)
	}
	return Put(t, nextOIDKey, oid), created, nil
}

// CreateTable -- adds a table to the catalog. OID 0 asks the catalog to
// assign one. Returns the stored entry.
func (c *Catalog) CreateTable(info TableInfo) (TableInfo, error) {
	var created []TableInfo
	err := c.update([]string{tableKey(info.Name), nextOIDKey}, func(t Trie) (Trie, error) {
		next, infos, err := addTables(t, []TableInfo{info})
		created = infos
		return next, err
	})
	if err != nil {
		return TableInfo{}, err
	}
	glog.V(1).Infof("catalog %s: created %v", c.name, created[0])
	return created[0], nil
}

// DropTable -- removes a table from the catalog.
func (c *Catalog) DropTable(name string) error {
	return c.update([]string{tableKey(name)}, func(t Trie) (Trie, error) {
		info := Get[TableInfo](t, tableKey(name))
		if info == nil {
			glog.Errorf("failed to find table: %s", name)
			return t, fmt.Errorf("%w: table %s", common.ErrNotFound, name)
		}
		return t.Remove(tableKey(name)).Remove(oidKey(info.OID)), nil
	})
}

// GetTable -- looks up a table in the current snapshot.
func (c *Catalog) GetTable(name string) (TableInfo, bool) {
	info, ok := Lookup[TableInfo](c.Snapshot(), tableKey(name))
	if ok {
		info.Columns = append([]string(nil), info.Columns...)
	}
	return info, ok
}

// ListTables -- names of all tables in the current snapshot, sorted.
func (c *Catalog) ListTables() []string {
	var names []string
	c.Snapshot().WalkPrefix(tableKeyPrefix, func(key string, node *Node) bool {
		if _, ok := node.value.(*TableInfo); ok {
			names = append(names, strings.TrimPrefix(key, tableKeyPrefix))
		}
		return true
	})
	return names
}

// LoadTables -- decodes table documents (as read from JSON or any other
// generic source) and adds them all in one snapshot. Either every table is
// added or none is.
func (c *Catalog) LoadTables(docs []map[string]interface{}) error {
	infos := make([]TableInfo, 0, len(docs))
	keys := []string{nextOIDKey}
	for i, doc := range docs {
		var info TableInfo
		if TestPointExecute(testPointFailDecode) {
			glog.Errorf("failed to decode table doc %d (testpoint)", i)
			return fmt.Errorf("%w: table doc %d", common.ErrInvalidParam, i)
		}
		if err := Decode(doc, &info); err != nil {
			glog.Errorf("failed to decode table doc %d: %v", i, err)
			return fmt.Errorf("%w: table doc %d: %v", common.ErrInvalidParam, i, err)
		}
		infos = append(infos, info)
		keys = append(keys, tableKey(info.Name))
	}
	return c.update(keys, func(t Trie) (Trie, error) {
		next, _, err := addTables(t, infos)
		return next, err
	})
}
