package hashids

// shuffle returns a copy of seq permuted with salt as the key.
func shuffle(seq, salt []rune) []rune {
	out := make([]rune, len(seq))
	copy(out, seq)
	shuffleInPlace(out, salt)
	return out
}

// shuffleInPlace is a Fisher-Yates walk where the swap index comes from an
// accumulator over the salt's code points instead of a random source. The
// operator order is part of the id format and must not change.
func shuffleInPlace(seq, salt []rune) {
	if len(salt) == 0 {
		return
	}

	for i, p, v := len(seq)-1, 0, 0; i > 0; i-- {
		p %= len(salt)
		c := int(salt[p])
		v += c
		j := (c + p + v) % i
		seq[i], seq[j] = seq[j], seq[i]
		p++
	}
}
