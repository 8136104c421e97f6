package portal

import (
	"hash/fnv"
	"math/rand"
	"sort"
)

// scoreSlack widens the eligible set beyond exact ties: every run within
// this many points of the top score can still be picked, which keeps
// placement varied across different puzzles on the same map.
const scoreSlack = 2

// selectRun picks one run for the given puzzle identifier. Candidates are
// stably sorted by score (the detector's scan order breaks ties), the runs
// within scoreSlack of the best are kept, and a generator seeded from
// baseSeed and the identifier draws one of them. The same identifier over
// the same occupancy always yields the same run. Returns false when runs
// is empty.
func selectRun(runs []Run, puzzleID string, baseSeed int64) (Run, bool) {
	if len(runs) == 0 {
		return Run{}, false
	}

	sorted := make([]Run, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	topScore := sorted[0].Score
	eligible := sorted[:1]
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Score < topScore-scoreSlack {
			break
		}
		eligible = sorted[:i+1]
	}

	rng := rand.New(rand.NewSource(baseSeed ^ int64(hashIdentifier(puzzleID))))
	return eligible[rng.Intn(len(eligible))], true
}

// hashIdentifier hashes a puzzle identifier with 64-bit FNV-1a over its
// UTF-8 bytes. The hash is fixed here on purpose: seeding must be stable
// across runs and builds, so a runtime-dependent hash would break
// reproducible placement.
func hashIdentifier(id string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return h.Sum64()
}
