// Package completion implements a frequency-ranked prefix trie: insert a
// word with a frequency score, then ask for the top-k highest scoring
// completions of a prefix. Every node keeps track of the maximum frequency
// reachable in its subtree so lookups can prune whole branches instead of
// walking the entire trie.
package completion

// node is a single trie node. children is indexed directly by byte value,
// mirroring the fixed 256-wide child table of the reference C
// implementation this package is modeled on.
type node struct {
	children       [256]*node
	isEnd          bool
	word           string
	frequency      float32
	maxSubtreeFreq float32
}

func newNode() *node {
	return &node{frequency: -1, maxSubtreeFreq: -1}
}

// Index is a frequency-ranked prefix trie over byte strings.
type Index struct {
	root *node
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{}
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// Insert adds word with the given frequency. Lookup is case-insensitive
// for ASCII letters; non-ASCII bytes are matched exactly. Re-inserting an
// existing word keeps the higher of the old and new frequency, and the
// first-inserted casing of the word itself.
func (idx *Index) Insert(word string, freq float32) {
	if word == "" {
		return
	}
	if idx.root == nil {
		idx.root = newNode()
	}
	curr := idx.root
	path := make([]*node, 0, len(word)+1)
	path = append(path, curr)
	for i := 0; i < len(word); i++ {
		b := lowerByte(word[i])
		if curr.children[b] == nil {
			curr.children[b] = newNode()
		}
		curr = curr.children[b]
		path = append(path, curr)
	}
	curr.isEnd = true
	if curr.word == "" {
		curr.word = word
	}
	if freq > curr.frequency {
		curr.frequency = freq
	}
	for _, n := range path {
		if freq > n.maxSubtreeFreq {
			n.maxSubtreeFreq = freq
		}
	}
}

// Reset discards every inserted word.
func (idx *Index) Reset() {
	idx.root = nil
}

// TopK returns up to k words starting with prefix, most frequent first.
// Words with equal scores keep the order in which the ascending-byte walk
// reaches them, not the order they were inserted. Returns nil for an empty prefix, a
// non-positive k, or a prefix with no matches.
func (idx *Index) TopK(prefix string, k int) []string {
	if idx.root == nil || prefix == "" || k <= 0 {
		return nil
	}
	curr := idx.root
	for i := 0; i < len(prefix); i++ {
		next := curr.children[lowerByte(prefix[i])]
		if next == nil {
			return nil
		}
		curr = next
	}
	var results []scoredWord
	collect(curr, &results, k, -1.0)
	words := make([]string, len(results))
	for i, r := range results {
		words[i] = r.word
	}
	return words
}

type scoredWord struct {
	word  string
	score float32
}

// collect performs the pruned DFS: it skips any subtree whose best
// possible score cannot beat currentMin, records word-end nodes that beat
// it, and re-derives currentMin from the current k-th best result before
// moving on to each sibling.
func collect(n *node, results *[]scoredWord, maxResults int, currentMin float32) {
	if n == nil || n.maxSubtreeFreq <= currentMin {
		return
	}
	if n.isEnd && n.frequency > currentMin {
		*results = insertResult(*results, scoredWord{n.word, n.frequency}, maxResults)
		if len(*results) == maxResults {
			currentMin = (*results)[maxResults-1].score
		}
	}
	for b := 0; b < 256; b++ {
		child := n.children[b]
		if child == nil || child.maxSubtreeFreq <= currentMin {
			continue
		}
		collect(child, results, maxResults, currentMin)
		if len(*results) == maxResults {
			currentMin = (*results)[maxResults-1].score
		}
	}
}

// insertResult inserts w into the sorted (descending score) results slice,
// capped at maxResults, keeping earlier arrivals ahead of later ties.
func insertResult(results []scoredWord, w scoredWord, maxResults int) []scoredWord {
	pos := len(results)
	for i, r := range results {
		if w.score > r.score {
			pos = i
			break
		}
	}
	if pos >= maxResults {
		return results
	}
	if len(results) < maxResults {
		results = append(results, scoredWord{})
	}
	copy(results[pos+1:], results[pos:len(results)-1])
	results[pos] = w
	return results
}
