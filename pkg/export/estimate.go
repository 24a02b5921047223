package export

// EstimateCost approximates the cost of a text fragment in budget units:
// ceil(n/4) where n is the length in UTF-16 code units. Characters outside
// the Basic Multilingual Plane count as two units, so they are deliberately
// more expensive per visible character. This is a fast deterministic cost
// model, not a token count for any particular model.
func EstimateCost(s string) int {
	units := 0
	for _, r := range s {
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	return (units + 3) / 4
}
