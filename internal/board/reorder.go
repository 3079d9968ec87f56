package board

import (
	"cmp"
	"slices"

	"github.com/roy-bentley/todo/internal/dto"
)

// Project computes the optimistic full ordering after moving visible[source] to destination.
//
// Items of the filtered view are renumbered by their position in the reordered view and
// merged into all by id; tasks outside the view keep their index. The result is stably
// sorted by order_index. Under any filter other than "all" the view positions are not
// global positions, so the projection can disagree with the server until the next refresh.
func Project(all, visible []dto.TaskDTO, source, destination int) []dto.TaskDTO {
	reordered := slices.Clone(visible)
	moved := reordered[source]
	reordered = slices.Delete(reordered, source, source+1)
	reordered = slices.Insert(reordered, destination, moved)

	byID := make(map[uint64]dto.TaskDTO, len(reordered))
	for i := range reordered {
		reordered[i].OrderIndex = i
		byID[reordered[i].ID] = reordered[i]
	}

	merged := slices.Clone(all)
	for i, t := range merged {
		if updated, ok := byID[t.ID]; ok {
			merged[i] = updated
		}
	}

	sortByOrder(merged)
	return merged
}

func sortByOrder(tasks []dto.TaskDTO) {
	slices.SortStableFunc(tasks, func(a, b dto.TaskDTO) int {
		return cmp.Compare(a.OrderIndex, b.OrderIndex)
	})
}
