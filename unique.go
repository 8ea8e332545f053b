package pattern

import "github.com/dgoffredo/pattern/patternerr"

// checkUniqueVariables walks a pattern tree and rejects any Variable
// instance that occurs at more than one site, including sites inside
// variable constraints and container elements. This is a static
// precondition on the pattern, independent of the subject; on success it
// returns every Variable the pattern mentions, keyed by id.
func checkUniqueVariables(pat any) (map[int]*Variable, error) {
	found := map[int]*Variable{}
	if err := collectVariables(pat, found); err != nil {
		return nil, err
	}
	return found, nil
}

func collectVariables(pat any, found map[int]*Variable) error {
	switch p := pat.(type) {
	case *Variable:
		if _, repeated := found[p.id]; repeated {
			return patternerr.NewRepeatedVariableError(p.id)
		}
		found[p.id] = p
		return collectVariables(p.constraint, found)
	case Seq:
		for _, elem := range p.Elems {
			if err := collectVariables(elem, found); err != nil {
				return err
			}
		}
	case Set:
		for _, elem := range p {
			if err := collectVariables(elem, found); err != nil {
				return err
			}
		}
	case Map:
		for _, entry := range p {
			if err := collectVariables(entry.Key, found); err != nil {
				return err
			}
			if err := collectVariables(entry.Val, found); err != nil {
				return err
			}
		}
	}
	return nil
}
