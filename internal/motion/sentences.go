package motion

func forwardSentence(text []rune, pos, n int) int {
	times, fwd := count(n)
	ss := sentences(text)
	for ; times > 0; times-- {
		if fwd {
			pos = nextSentenceEnd(ss, pos, len(text))
		} else {
			pos = prevSentenceStart(ss, pos)
		}
	}
	return pos
}

func nextSentenceEnd(ss []span, pos, limit int) int {
	for _, s := range ss {
		if s.End > pos {
			return s.End
		}
	}
	return limit
}

func prevSentenceStart(ss []span, pos int) int {
	for i := len(ss) - 1; i >= 0; i-- {
		if ss[i].Start < pos {
			return ss[i].Start
		}
	}
	return 0
}
