package specification

import "gorm.io/gorm"

// ByKey filters key-value rows by primary key
type ByKey struct {
	Key string
}

func (s ByKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key = ?", s.Key)
}

// ByKeys filters key-value rows by a set of keys
type ByKeys struct {
	Keys []string
}

func (s ByKeys) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key IN ?", s.Keys)
}
