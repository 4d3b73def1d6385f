package buffer

// LineStart returns the offset of the start of the line containing offset.
func (b *Buffer) LineStart(offset int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	offset = b.clamp(offset)
	for offset > 0 && b.text[offset-1] != '\n' {
		offset--
	}
	return offset
}

// LineEnd returns the offset of the newline ending the line containing
// offset, or Len() on the last line.
func (b *Buffer) LineEnd(offset int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	offset = b.clamp(offset)
	for offset < len(b.text) && b.text[offset] != '\n' {
		offset++
	}
	return offset
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 1
	for _, r := range b.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

// LineOf returns the zero-based line number of offset.
func (b *Buffer) LineOf(offset int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	offset = b.clamp(offset)
	n := 0
	for _, r := range b.text[:offset] {
		if r == '\n' {
			n++
		}
	}
	return n
}

// OffsetOfLine returns the start offset of a zero-based line, clamped to
// the first and last lines.
func (b *Buffer) OffsetOfLine(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line <= 0 {
		return 0
	}
	n := 0
	for i, r := range b.text {
		if r == '\n' {
			n++
			if n == line {
				return i + 1
			}
		}
	}
	// Past the last line: start of the last line.
	for i := len(b.text); i > 0; i-- {
		if b.text[i-1] == '\n' {
			return i
		}
	}
	return 0
}
