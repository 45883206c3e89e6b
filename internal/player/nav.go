package player

import "learner/internal/model"

// ViewMode is the sidebar tab orthogonal to leaf selection.
type ViewMode string

const (
	ViewContent     ViewMode = "content"
	ViewDiscussions ViewMode = "discussions"
)

// Navigator tracks which leaf is active and which view mode is showing.
// Selection is a synchronous state update; it never fails and never
// suspends.
type Navigator struct {
	active    model.Leaf
	hasActive bool
	mode      ViewMode
}

// NewNavigator starts in content mode with no active leaf.
func NewNavigator() *Navigator {
	return &Navigator{mode: ViewContent}
}

// Reset replaces the whole selection state after a course (re)load.
func (n *Navigator) Reset(leaf model.Leaf, ok bool) {
	n.active = leaf
	n.hasActive = ok
	n.mode = ViewContent
}

// Active returns the active leaf, if any.
func (n *Navigator) Active() (model.Leaf, bool) { return n.active, n.hasActive }

// Mode returns the current view mode.
func (n *Navigator) Mode() ViewMode { return n.mode }

// SelectContent activates a content item and returns to content mode.
func (n *Navigator) SelectContent(c *model.Content) {
	n.activate(model.ContentLeaf(c))
}

// SelectQuiz activates a quiz leaf and returns to content mode.
func (n *Navigator) SelectQuiz(q *model.Quiz) {
	n.activate(model.QuizLeaf(q))
}

// SelectAssignment activates an assignment leaf and returns to content mode.
func (n *Navigator) SelectAssignment(a *model.Assignment) {
	n.activate(model.AssignmentLeaf(a))
}

// SelectDiscussionTab switches to the discussion view. The active leaf is
// retained so returning to content mode restores it.
func (n *Navigator) SelectDiscussionTab() {
	n.mode = ViewDiscussions
}

// SelectContentTab returns to the content view without changing the leaf.
func (n *Navigator) SelectContentTab() {
	n.mode = ViewContent
}

func (n *Navigator) activate(leaf model.Leaf) {
	n.active = leaf
	n.hasActive = true
	n.mode = ViewContent
}
