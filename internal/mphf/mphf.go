// Package mphf builds minimal perfect hash function tables using the
// PTHash-style compress-hash-displace scheme: entries are bucketed by
// hash%bucketCount, and each bucket (processed largest-first) is assigned a
// pilot value whose hash, xored into each member's key hash, displaces every
// member of that bucket into a currently-empty output slot.
//
// This is a from-scratch Go port of the algorithm used to build this
// project's own lookup tables in its original, non-Go form; the module uses
// it instead of depending on a third-party MPHF library.
package mphf

import (
	"fmt"
	"math/bits"
	"sort"
)

// fxhashConstant is the multiplicative constant used by the fxhash family of
// hashers to mix a pilot value into a well-distributed 32-bit displacement.
const fxhashConstant = 0x517cc1b727220a95

func hashPilot(pilot uint64) uint32 {
	return uint32(pilot * fxhashConstant)
}

// Table is a built minimal perfect hash function mapping a known, fixed set
// of uint64 keys to values of type V in O(1). Get is undefined for keys
// outside the set the table was built from.
type Table[V any] struct {
	pilots []uint32
	values []V
}

// Get returns the value associated with key. key must be one of the keys the
// table was built from; other inputs return an unspecified value from the
// table without panicking.
func (t *Table[V]) Get(key uint64) V {
	pilot := uint64(t.pilots[key%uint64(len(t.pilots))])
	idx := (key ^ uint64(hashPilot(pilot))) % uint64(len(t.values))
	return t.values[idx]
}

// Len returns the size of the table's backing value array (its codomain),
// not the number of keys it was built from.
func (t *Table[V]) Len() int {
	return len(t.values)
}

// BuildOptions tunes the space/build-time tradeoff of Build. Zero value
// selects the defaults used throughout this module's generated tables.
type BuildOptions struct {
	// BucketDensity (c) scales the bucket count relative to n/lg(n). Higher
	// values build faster but produce a larger pilots table.
	BucketDensity float64
	// LoadFactor (alpha) controls how much larger the output codomain is
	// than the key count. Lower values build faster but waste more space.
	LoadFactor float64
}

func (o BuildOptions) withDefaults() BuildOptions {
	if o.BucketDensity <= 0 {
		o.BucketDensity = 5.0
	}
	if o.LoadFactor <= 0 || o.LoadFactor > 1 {
		o.LoadFactor = 0.9
	}
	return o
}

// Build constructs a minimal perfect hash Table mapping each keys[i] to
// values[i]. Keys must be pairwise distinct.
func Build[V any](keys []uint64, values []V, opts BuildOptions) (*Table[V], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("mphf: %d keys but %d values", len(keys), len(values))
	}
	n := len(keys)
	if n == 0 {
		return &Table[V]{pilots: []uint32{0}, values: make([]V, 1)}, nil
	}
	if n == 1 {
		return &Table[V]{pilots: []uint32{0}, values: []V{values[0]}}, nil
	}
	opts = opts.withDefaults()

	lg := float64(bits.Len(uint(n)) - 1)
	bucketsLen := uint64(ceilDiv(opts.BucketDensity*float64(n), lg))
	if bucketsLen == 0 {
		bucketsLen = 1
	}
	candidate := uint64(ceilf(float64(n) / opts.LoadFactor))
	codomainLen := candidate
	if codomainLen%2 == 0 {
		codomainLen++
	}

	type hashedEntry struct {
		idx    int
		hash   uint64
		bucket uint64
	}
	hashed := make([]hashedEntry, n)
	for i, k := range keys {
		hashed[i] = hashedEntry{idx: i, hash: k, bucket: k % bucketsLen}
	}
	sort.Slice(hashed, func(i, j int) bool {
		if hashed[i].bucket != hashed[j].bucket {
			return hashed[i].bucket < hashed[j].bucket
		}
		return hashed[i].hash < hashed[j].hash
	})

	type bucketData struct {
		idx      uint64
		startIdx int
		size     int
	}
	buckets := make([]bucketData, 0, bucketsLen)
	start := 0
	for b := uint64(0); b < bucketsLen; b++ {
		size := 0
		for start+size < len(hashed) && hashed[start+size].bucket == b {
			size++
		}
		buckets = append(buckets, bucketData{idx: b, startIdx: start, size: size})
		start += size
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].size > buckets[j].size })

	const emptySlot = -1
	pilotsTable := make([]uint32, bucketsLen)
	slotOwner := make([]int, codomainLen)
	for i := range slotOwner {
		slotOwner[i] = emptySlot
	}

	type placement struct {
		idx  int
		dest uint64
	}
	toAdd := make([]placement, 0, 8)

	for _, bucket := range buckets {
		entries := hashed[bucket.startIdx : bucket.startIdx+bucket.size]
		if len(entries) == 0 {
			continue
		}
	pilotSearch:
		for pilot := uint64(0); ; pilot++ {
			toAdd = toAdd[:0]
			pilotHash := hashPilot(pilot)

			for _, e := range entries {
				dest := (e.hash ^ uint64(pilotHash)) % codomainLen
				if slotOwner[dest] != emptySlot {
					continue pilotSearch
				}
				toAdd = append(toAdd, placement{idx: e.idx, dest: dest})
			}

			sort.Slice(toAdd, func(i, j int) bool { return toAdd[i].dest < toAdd[j].dest })
			for i := 1; i < len(toAdd); i++ {
				if toAdd[i].dest == toAdd[i-1].dest {
					continue pilotSearch
				}
			}

			for _, p := range toAdd {
				slotOwner[p.dest] = p.idx
			}
			pilotsTable[bucket.idx] = uint32(pilot)
			break
		}
	}

	outValues := make([]V, codomainLen)
	for slot, owner := range slotOwner {
		if owner != emptySlot {
			outValues[slot] = values[owner]
		}
	}

	return &Table[V]{pilots: pilotsTable, values: outValues}, nil
}

func ceilDiv(a, b float64) float64 {
	return ceilf(a / b)
}

func ceilf(x float64) float64 {
	i := float64(int64(x))
	if i < x {
		return i + 1
	}
	return i
}
