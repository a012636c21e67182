package domain

// ActionSet holds one boolean per action for a single capability area.
// This is the persisted shape of a grant: a fixed, closed set of flags,
// serialized as part of the role's matrix document.
type ActionSet struct {
	View     bool `json:"view"`
	Add      bool `json:"add"`
	Edit     bool `json:"edit"`
	Delete   bool `json:"delete"`
	Assign   bool `json:"assign"`
	Approve  bool `json:"approve"`
	Generate bool `json:"generate"`
	Lost     bool `json:"lost"`
}

// Allows reports whether the set grants the given action. Unknown actions are
// simply not granted; they never error. Not every action is meaningful for
// every area, but that is a domain convention, not a whitelist enforced here.
func (s ActionSet) Allows(action Action) bool {
	switch action {
	case ActionView:
		return s.View
	case ActionAdd:
		return s.Add
	case ActionEdit:
		return s.Edit
	case ActionDelete:
		return s.Delete
	case ActionAssign:
		return s.Assign
	case ActionApprove:
		return s.Approve
	case ActionGenerate:
		return s.Generate
	case ActionLost:
		return s.Lost
	default:
		return false
	}
}

// SubareaGrant is a grant on a nested sub-area. Its action set is independent
// of the parent area's: enabling a parent does not implicitly enable children,
// and vice versa.
type SubareaGrant struct {
	Title   string    `json:"title"`
	Actions ActionSet `json:"actions"`
}

// AreaGrant is a grant on a top-level capability area plus its sub-areas.
// Nesting is exactly two levels deep.
type AreaGrant struct {
	Title    string         `json:"title"`
	Actions  ActionSet      `json:"actions"`
	Subareas []SubareaGrant `json:"subareas,omitempty"`
}
