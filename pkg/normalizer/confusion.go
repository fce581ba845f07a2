package normalizer

// Positional OCR-confusion correction for 10-character alphanumeric tax
// IDs (5 letters + 4 digits + 1 letter). Tesseract trades visually similar
// glyphs across the letter/digit boundary; position in the code decides
// which side the character must be on, so misreads can be mapped back
// deterministically.

// digitToLetter repairs digits read where only letters can occur.
var digitToLetter = map[byte]byte{
	'0': 'O',
	'1': 'I',
	'8': 'B',
}

// letterToDigit repairs letters read where only digits can occur.
var letterToDigit = map[byte]byte{
	'S': '8', 'B': '8',
	'O': '0', 'Q': '0', 'D': '0',
	'I': '1', 'L': '1', 'J': '1',
	'Z': '2', 'R': '2',
	'E': '3',
	'A': '4', 'H': '4',
	'G': '6',
	'T': '7',
	'P': '9',
}

// fixTaxIDConfusions corrects misreads in an uppercased 10-character tax
// ID. Values of any other length pass through untouched.
func fixTaxIDConfusions(value string) string {
	if len(value) != 10 {
		return value
	}

	b := []byte(value)
	for i := 0; i < 5; i++ {
		if r, ok := digitToLetter[b[i]]; ok {
			b[i] = r
		}
	}
	for i := 5; i < 9; i++ {
		if r, ok := letterToDigit[b[i]]; ok {
			b[i] = r
		}
	}
	if r, ok := digitToLetter[b[9]]; ok {
		b[9] = r
	}
	return string(b)
}
