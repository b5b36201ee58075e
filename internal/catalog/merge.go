package catalog

import "sort"

// MergeInputs collapses inputs sharing a name and returns them sorted by name,
// each with a deduplicated, sorted tag list.
func MergeInputs(inputs []ExerciseInput) []ExerciseInput {
	byName := make(map[string]*ExerciseInput, len(inputs))
	tagSets := make(map[string]map[string]struct{}, len(inputs))
	for _, in := range inputs {
		existing, ok := byName[in.Name]
		if !ok {
			existing = &ExerciseInput{Name: in.Name, Description: in.Description}
			byName[in.Name] = existing
			tagSets[in.Name] = make(map[string]struct{})
		}
		if existing.Description == nil {
			existing.Description = in.Description
		}
		for _, t := range in.Tags {
			tagSets[in.Name][t] = struct{}{}
		}
	}

	merged := make([]ExerciseInput, 0, len(byName))
	for name, in := range byName {
		in.Tags = sortedKeys(tagSets[name])
		merged = append(merged, *in)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Name < merged[j].Name
	})
	return merged
}

func SortTags(tags []Tag) {
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func tagsOrEmpty(tags []Tag) []Tag {
	if tags == nil {
		return []Tag{}
	}
	return tags
}
