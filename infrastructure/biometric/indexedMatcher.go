package biometric

import (
	"sync"

	"facegate.io/infrastructure/biometric/types"
	"facegate.io/infrastructure/logger"
	"github.com/coder/hnsw"
)

// IndexedMatcher answers Match through an HNSW graph instead of a
// linear scan. Same contract as LinearMatcher, meant for galleries
// large enough that O(n) per probe hurts.
type IndexedMatcher struct {
	mu      sync.Mutex
	graph   *hnsw.Graph[string]
	entries map[string]types.GalleryEntry
	// snapshot holds every identity seen at the last Rebuild, dropped
	// entries included, so staleness is judged against the gallery that
	// was offered rather than the subset that indexed cleanly
	snapshot map[string]struct{}
}

func NewIndexedMatcher() *IndexedMatcher {
	graph := hnsw.NewGraph[string]()
	graph.Distance = hnsw.CosineDistance
	return &IndexedMatcher{
		graph:    graph,
		entries:  map[string]types.GalleryEntry{},
		snapshot: map[string]struct{}{},
	}
}

// Rebuild replaces the index with the given gallery snapshot. Entries
// whose embedding length disagrees with the rest are dropped here, the
// same skip policy the linear scanner applies per probe.
func (m *IndexedMatcher) Rebuild(gallery []types.GalleryEntry, embeddingLength int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	graph := hnsw.NewGraph[string]()
	graph.Distance = hnsw.CosineDistance
	entries := map[string]types.GalleryEntry{}
	snapshot := map[string]struct{}{}
	for _, entry := range gallery {
		snapshot[entry.IdentityID] = struct{}{}
		if len(entry.Embedding) != embeddingLength {
			logger.Warning("dropping gallery entry with mismatched embedding length from index", logger.LoggerOptions{
				Key:  "identityID",
				Data: entry.IdentityID,
			})
			continue
		}
		graph.Add(hnsw.MakeNode(entry.IdentityID, toFloat32(entry.Embedding)))
		entries[entry.IdentityID] = entry
	}
	m.graph = graph
	m.entries = entries
	m.snapshot = snapshot
}

// staleLocked reports whether the offered gallery snapshot differs
// from the one the index was built over. The gallery is owned and
// mutated externally, so identity membership has to be compared on
// every probe; a same-size delete-plus-enroll changes the set without
// changing its length.
func (m *IndexedMatcher) staleLocked(gallery []types.GalleryEntry) bool {
	if len(m.snapshot) != len(gallery) {
		return true
	}
	for _, entry := range gallery {
		if _, ok := m.snapshot[entry.IdentityID]; !ok {
			return true
		}
	}
	return false
}

func (m *IndexedMatcher) Match(probe []float64, gallery []types.GalleryEntry) types.MatchResult {
	m.mu.Lock()
	stale := m.staleLocked(gallery)
	m.mu.Unlock()
	if stale {
		m.Rebuild(gallery, len(probe))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// every indexed entry is a candidate during the graph search, so
	// the considered count covers the whole index, not just the single
	// exactly re-scored neighbor
	result := types.MatchResult{ConsideredCount: len(m.entries)}
	if len(m.entries) == 0 {
		return result
	}

	neighbors := m.graph.Search(toFloat32(probe), 1)
	if len(neighbors) == 0 {
		return result
	}
	entry, ok := m.entries[neighbors[0].Key]
	if !ok {
		return result
	}

	// re-score the winner exactly so decisions match the linear scanner
	similarity, err := CosineSimilarity(probe, entry.Embedding)
	if err != nil {
		logger.Warning("indexed match candidate failed exact re-score", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return result
	}
	if similarity > 0 {
		identityID := entry.IdentityID
		result.BestIdentityID = &identityID
		result.BestSimilarity = similarity
	}
	return result
}

func toFloat32(values []float64) []float32 {
	converted := make([]float32, len(values))
	for i, v := range values {
		converted[i] = float32(v)
	}
	return converted
}
