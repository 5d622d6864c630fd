package buffer

// Only the ASCII space byte delimits words. Tabs, newlines, and other
// whitespace are ordinary word bytes. This narrowing is deliberate.
const wordDelimiter = byte(' ')

// FirstWord returns the first space-delimited token of v, skipping any
// leading spaces. The result is a sub-view of v sharing the same backing
// buffer and generation stamp; no bytes are copied.
//
// An empty or all-space view yields an empty view at v's end. FirstWord is
// total over all valid views: a single forward scan, no allocation.
func FirstWord(v View) View {
	data := v.raw()

	start := -1
	for i, c := range data {
		if start < 0 {
			if c != wordDelimiter {
				start = i
			}
			continue
		}
		if c == wordDelimiter {
			return v.Slice(start, i)
		}
	}

	if start < 0 {
		return v.Slice(len(data), len(data))
	}
	return v.Slice(start, len(data))
}
