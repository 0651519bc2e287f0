package engine

import (
	"context"
	"fmt"

	"github.com/pkgset-dev/pkgset/internal/stringset"
)

// List reports every set with its marker state and, on request, its
// membership. Read-only.
func (e *Engine) List(ctx context.Context, req *ListRequest) ([]SetInfo, error) {
	all, err := e.registry.All()
	if err != nil {
		return nil, err
	}

	infos := make([]SetInfo, 0, len(all))
	for _, s := range all {
		installed, err := s.Installed()
		if err != nil {
			return nil, fmt.Errorf("failed to check marker: %w", err)
		}

		info := SetInfo{Name: s.Name, Installed: installed}
		if req.Members {
			members, err := s.Get()
			if err != nil {
				return nil, err
			}
			info.Members = stringset.Sorted(members)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
