package core

// KeyDirEntry locates a key inside the ordered record list.
//
// A malformed file may repeat a key. Last is the position lookups use (the
// last occurrence wins), Count tells how many records share the key.
type KeyDirEntry struct {
	First int // Index of the first occurrence
	Last  int // Index of the last occurrence
	Count int // Number of records with this key
}

// KeyDir is the in-memory index mapping keys to their positions.
//
// It is rebuilt whenever records are removed or replaced; appends update
// it incrementally.
type KeyDir map[string]KeyDirEntry

func (kd KeyDir) add(key string, index int) {
	entry, ok := kd[key]
	if !ok {
		kd[key] = KeyDirEntry{First: index, Last: index, Count: 1}
		return
	}
	entry.Last = index
	entry.Count++
	kd[key] = entry
}
