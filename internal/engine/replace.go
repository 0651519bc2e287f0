package engine

import "context"

// ReplaceAll renames a package across every set, installed or not. Pure
// file rewrite, no live-system interaction.
func (e *Engine) ReplaceAll(ctx context.Context, req *ReplaceAllRequest) (*ReplaceAllResult, error) {
	all, err := e.registry.All()
	if err != nil {
		return nil, err
	}

	result := &ReplaceAllResult{}
	for _, s := range all {
		changed, err := s.Replace(req.Old, req.New)
		if err != nil {
			return result, err
		}
		if changed {
			result.Changed = append(result.Changed, s.Name)
		}
	}
	return result, nil
}
