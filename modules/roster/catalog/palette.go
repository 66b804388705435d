package catalog

import "hash/fnv"

// palette is the fixed set of tag colors. Color choice must be stable within
// and across sessions, so tags hash into this list instead of picking
// randomly.
var palette = []string{
	"#2563eb",
	"#16a34a",
	"#d97706",
	"#dc2626",
	"#7c3aed",
	"#0891b2",
	"#db2777",
	"#65a30d",
	"#ea580c",
	"#475569",
}

// ColorFor derives the display color for a tag deterministically from its
// text.
func ColorFor(text string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return palette[h.Sum32()%uint32(len(palette))]
}
