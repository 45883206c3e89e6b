package model

// LeafKind tags the variant held by a Leaf.
type LeafKind string

const (
	LeafContent    LeafKind = "CONTENT"
	LeafQuiz       LeafKind = "QUIZ"
	LeafAssignment LeafKind = "ASSIGNMENT"
)

// Leaf is the unit a learner can navigate to within a module: a content
// item, a quiz or an assignment. Exactly one of the pointers is set,
// according to Kind.
type Leaf struct {
	Kind       LeafKind
	Content    *Content
	Quiz       *Quiz
	Assignment *Assignment
}

func ContentLeaf(c *Content) Leaf       { return Leaf{Kind: LeafContent, Content: c} }
func QuizLeaf(q *Quiz) Leaf             { return Leaf{Kind: LeafQuiz, Quiz: q} }
func AssignmentLeaf(a *Assignment) Leaf { return Leaf{Kind: LeafAssignment, Assignment: a} }

// ID returns the identifier of the underlying item.
func (l Leaf) ID() int64 {
	switch l.Kind {
	case LeafContent:
		return l.Content.ContentID
	case LeafQuiz:
		return l.Quiz.QuizID
	case LeafAssignment:
		return l.Assignment.AssignmentID
	}
	return 0
}

// Title returns the display title of the underlying item.
func (l Leaf) Title() string {
	switch l.Kind {
	case LeafContent:
		return l.Content.Title
	case LeafQuiz:
		return l.Quiz.Title
	case LeafAssignment:
		return l.Assignment.Title
	}
	return ""
}
