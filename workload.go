package main

import (
	"math/rand"

	"github.com/btree-query-bench/leafchain/index"
)

type WorkloadType string

const (
	OLTP      WorkloadType = "OLTP (90/10)"
	OLAP      WorkloadType = "OLAP (10/90)"
	Churn     WorkloadType = "Churn (50/50 insert/delete)"
	Reporting WorkloadType = "Reporting (Scan)"
)

// ExecuteWorkload runs a mixed distribution of ops over keys in [0, keySpace).
func ExecuteWorkload(idx index.KeySet, wType WorkloadType, ops, keySpace int) error {
	for i := 0; i < ops; i++ {
		choice := rand.Intn(100)
		key := int64(rand.Intn(keySpace))

		var err error
		switch wType {
		case OLTP:
			if choice < 90 {
				_, err = idx.Contains(key)
			} else {
				err = idx.Insert(key)
			}
		case OLAP:
			if choice < 10 {
				_, err = idx.Contains(key)
			} else {
				err = idx.Insert(key)
			}
		case Churn:
			if choice < 50 {
				err = idx.Insert(key)
			} else {
				_, err = idx.Delete(key)
			}
		case Reporting:
			err = scanAll(idx)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func scanAll(idx index.KeySet) error {
	it, err := idx.Scan()
	if err != nil {
		return err
	}
	for it.Next() {
	}
	if err := it.Error(); err != nil {
		it.Close()
		return err
	}
	return it.Close()
}
