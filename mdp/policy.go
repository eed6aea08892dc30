package mdp

import "strconv"

// FormatPolicy maps each state's action through names to a display label.
// Actions without an entry in names fall back to their decimal index, so a
// partial name table still renders every state.
func FormatPolicy(p Policy, names map[int]string) []string {
	labels := make([]string, len(p))
	for s, a := range p {
		if name, ok := names[a]; ok {
			labels[s] = name
		} else {
			labels[s] = strconv.Itoa(a)
		}
	}
	return labels
}
