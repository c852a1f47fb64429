// internal/game/letters.go

package game

import "encoding/json"

// Letters is an ordered tile sequence. On the wire it is an array of
// single-character strings ("S","C","R",...), matching the browser client.
type Letters []rune

func (l Letters) MarshalJSON() ([]byte, error) {
	out := make([]string, len(l))
	for i, r := range l {
		out[i] = string(r)
	}
	return json.Marshal(out)
}

func (l *Letters) UnmarshalJSON(b []byte) error {
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Letters, 0, len(raw))
	for _, s := range raw {
		out = append(out, []rune(s)...)
	}
	*l = out
	return nil
}
