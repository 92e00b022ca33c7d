package report

import "sort"

type (
	// TagCount is one ranked row of the frequency table.
	TagCount struct {
		Tag   string `json:"tag"`   // normalized hashtag token
		Count int    `json:"count"` // total occurrences across the run
	}
	// Counter accumulates hashtag occurrences across every post of a run.
	Counter struct {
		counts      map[string]int
		order       []string // tokens in first-appearance order
		taggedPosts int
	}
)

// NewCounter returns an empty frequency table.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// AddPost merges one post's hashtag token list into the table, incrementing
// per occurrence. Posts contributing at least one hashtag are tallied
// separately for the run summary.
func (c *Counter) AddPost(tags []string) {
	for _, tag := range tags {
		if _, seen := c.counts[tag]; !seen {
			c.order = append(c.order, tag)
		}
		c.counts[tag]++
	}
	if len(tags) > 0 {
		c.taggedPosts++
	}
}

// Len returns the number of distinct hashtags.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Get returns the count for a token, zero if never seen.
func (c *Counter) Get(tag string) int {
	return c.counts[tag]
}

// TaggedPosts returns how many posts contributed at least one hashtag.
func (c *Counter) TaggedPosts() int {
	return c.taggedPosts
}

// TotalUses returns the sum of all counts.
func (c *Counter) TotalUses() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Ranked returns every entry sorted by count descending. Equal counts order
// alphabetically by token.
func (c *Counter) Ranked() []TagCount {
	entries := make([]TagCount, 0, len(c.order))
	for _, tag := range c.order {
		entries = append(entries, TagCount{Tag: tag, Count: c.counts[tag]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Tag < entries[j].Tag
	})
	return entries
}

// Top returns the first n ranked entries, fewer if the table is smaller.
// Zero or negative n returns an empty list.
func (c *Counter) Top(n int) []TagCount {
	if n < 0 {
		n = 0
	}
	ranked := c.Ranked()
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
