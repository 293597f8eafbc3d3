package catalog

import (
	"github.com/bastiangx/arena/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index answers "which records have a title containing term" without scanning
// every title. Every suffix of every folded title is a trie key, so a
// containment query becomes a subtree visit.
//
// An Index is read-only after NewIndex and built once per Dataset.
type Index struct {
	trie   *patricia.Trie
	titled []int
	size   int
}

// NewIndex builds the suffix trie for ds.
func NewIndex(ds Dataset) *Index {
	idx := &Index{
		trie: patricia.NewTrie(),
		size: ds.Len(),
	}
	for i, rec := range ds.records {
		if rec.Untitled {
			continue
		}
		idx.titled = append(idx.titled, i)
		for _, suffix := range utils.Suffixes(utils.Fold(rec.Title)) {
			key := patricia.Prefix(suffix)
			if item := idx.trie.Get(key); item != nil {
				idx.trie.Set(key, append(item.([]int), i))
				continue
			}
			idx.trie.Insert(key, []int{i})
		}
	}
	return idx
}

// Matching returns the positions of records whose folded title contains the
// folded term, in dataset order. An empty term matches every titled record.
func (idx *Index) Matching(term string) []int {
	if term == "" {
		out := make([]int, len(idx.titled))
		copy(out, idx.titled)
		return out
	}

	hit := make([]bool, idx.size)
	err := idx.trie.VisitSubtree(patricia.Prefix(utils.Fold(term)), func(_ patricia.Prefix, item patricia.Item) error {
		for _, i := range item.([]int) {
			hit[i] = true
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting title index: %v", err)
		return nil
	}

	var out []int
	for i, ok := range hit {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
