package player

import "learner/internal/model"

// ModuleLeaves returns a module's leaves in traversal order: content items
// in list order, then its quiz, then its assignment.
func ModuleLeaves(m *model.Module) []model.Leaf {
	leaves := make([]model.Leaf, 0, len(m.Contents)+2)
	for i := range m.Contents {
		leaves = append(leaves, model.ContentLeaf(&m.Contents[i]))
	}
	if m.Quiz != nil {
		leaves = append(leaves, model.QuizLeaf(m.Quiz))
	}
	if m.Assignment != nil {
		leaves = append(leaves, model.AssignmentLeaf(m.Assignment))
	}
	return leaves
}

// FirstLeaf returns the leaf a fresh course load should activate: the
// first content item of the first module, or that module's quiz, or its
// assignment, in that priority order. Returns false when the course has no
// modules or the first module has no leaves.
func FirstLeaf(course *model.Course) (model.Leaf, bool) {
	if course == nil || len(course.Modules) == 0 {
		return model.Leaf{}, false
	}
	leaves := ModuleLeaves(&course.Modules[0])
	if len(leaves) == 0 {
		return model.Leaf{}, false
	}
	return leaves[0], true
}
