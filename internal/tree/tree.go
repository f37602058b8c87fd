// Package tree implements the contact browser: a three-level navigator over
// targetable contacts, their named information sections, and the rows inside
// a section. Sections are computed lazily per contact and cached until the
// contact cursor moves.
package tree

// Contact is one targetable entity at the root level.
type Contact struct {
	ID   string
	Name string
}

// Item is a single row inside a section. Rows with an ActionID activate
// through the executor; the rest are informational and re-read themselves.
type Item struct {
	Label    string
	ActionID string
}

// CanActivate reports whether activating the row triggers a host action.
func (i Item) CanActivate() bool { return i.ActionID != "" }

// Section is a named grouping of rows about one contact. A section with rows
// drills into item-level navigation; a rowless section with an ActionID
// activates directly.
type Section struct {
	Name     string
	Items    []Item
	ActionID string
}

// CanDrillInto reports whether the section opens item-level navigation.
func (s Section) CanDrillInto() bool { return len(s.Items) > 0 }

// CanActivate reports whether the section activates directly instead.
func (s Section) CanActivate() bool { return len(s.Items) == 0 && s.ActionID != "" }

// ContactQuery supplies contacts and their section content. Section content
// is a function of the current contact (standing, eligibility, live
// ownership) and must be recomputed when the contact changes.
type ContactQuery interface {
	Contacts() []Contact
	Sections(contactID string) ([]Section, error)
}
