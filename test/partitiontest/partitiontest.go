// Copyright (C) 2024-2025 the go-exposure authors.
// This file is part of go-exposure
//
// go-exposure is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-exposure is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-exposure.  If not, see <https://www.gnu.org/licenses/>.

// Package partitiontest assigns tests to CI partitions by hashing their
// names, so that parallel runners each execute a disjoint slice of the
// suite. With no partition environment set it is a no-op.
package partitiontest

import (
	"hash/fnv"
	"os"
	"strconv"
	"testing"
)

// PartitionTest skips t unless it hashes into the partition selected by the
// PARTITION_ID / PARTITION_TOTAL environment variables.
func PartitionTest(t *testing.T) {
	total, ok := envInt("PARTITION_TOTAL")
	if !ok || total <= 0 {
		return
	}
	id, ok := envInt("PARTITION_ID")
	if !ok {
		return
	}
	h := fnv.New64a()
	h.Write([]byte(t.Name()))
	if assigned := h.Sum64() % uint64(total); assigned != uint64(id) {
		t.Skipf("skipping: test assigned to partition %d", assigned)
	}
}

func envInt(name string) (int, bool) {
	v, found := os.LookupEnv(name)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
