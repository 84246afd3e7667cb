package transcript

// DefaultSpeakerLabel returns the generated label for the n-th distinct
// speaker (0-based): Speaker-A … Speaker-Z, Speaker-AA, Speaker-AB, …
func DefaultSpeakerLabel(n int) string {
	return "Speaker-" + letterSequence(n)
}

// letterSequence is bijective base-26 over A-Z: 0->A, 25->Z, 26->AA, 701->ZZ, 702->AAA
func letterSequence(n int) string {
	if n < 0 {
		n = 0
	}
	var buf []byte
	for n >= 0 {
		buf = append([]byte{byte('A' + n%26)}, buf...)
		n = n/26 - 1
	}
	return string(buf)
}
