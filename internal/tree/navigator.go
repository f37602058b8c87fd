package tree

import (
	"fmt"

	"github.com/kestrelaudio/screenvoice/internal/announce"
	"github.com/kestrelaudio/screenvoice/internal/command"
	"github.com/kestrelaudio/screenvoice/internal/host"
	"github.com/kestrelaudio/screenvoice/internal/logging"
	"github.com/kestrelaudio/screenvoice/internal/logging/events"
	"github.com/kestrelaudio/screenvoice/internal/options"
)

// Level is the navigator's depth.
type Level int

const (
	LevelRoot Level = iota
	LevelSection
	LevelItem
)

func (l Level) String() string {
	switch l {
	case LevelRoot:
		return "root"
	case LevelSection:
		return "section"
	case LevelItem:
		return "item"
	}
	return "unknown"
}

// assignAction is the terminal success path of the whole sub-mode, distinct
// from backing out.
const assignAction = "contact:assign-target"

// Navigator walks contacts, sections and items with a single cursor per
// level. The section cache is a single slot keyed by the contact index:
// only one contact is current at a time, so nothing more general is needed.
type Navigator struct {
	data ContactQuery
	exec host.ActionExecutor

	contacts []Contact
	rootSeq  *options.Sequence

	level      Level
	sections   []Section
	cachedFor  int // root index the section cache was built against, -1 when empty
	sectionSeq *options.Sequence
	sectionIdx int
	itemSeq    *options.Sequence
}

// NewNavigator snapshots the contact list and starts at root level.
func NewNavigator(data ContactQuery, exec host.ActionExecutor) *Navigator {
	n := &Navigator{data: data, exec: exec, cachedFor: -1}
	n.contacts = data.Contacts()
	opts := make([]options.Option, 0, len(n.contacts))
	for _, c := range n.contacts {
		opts = append(opts, options.Option{Label: c.Name, Tag: c.ID, Activatable: true})
	}
	n.rootSeq = options.New("contacts:root", opts)
	return n
}

func (n *Navigator) Level() Level { return n.level }

// current returns the contact under the root cursor.
func (n *Navigator) current() (Contact, bool) {
	idx := n.rootSeq.Index()
	if idx < 0 || idx >= len(n.contacts) {
		return Contact{}, false
	}
	return n.contacts[idx], true
}

// loadSections fills the single-slot cache for the current contact. A failed
// query reads as a contact with no sections; the failure is logged, not
// surfaced as a crash.
func (n *Navigator) loadSections() []Section {
	idx := n.rootSeq.Index()
	if idx < 0 {
		return nil
	}
	if n.cachedFor == idx {
		return n.sections
	}
	contact, ok := n.current()
	if !ok {
		return nil
	}
	sections, err := n.data.Sections(contact.ID)
	if err != nil {
		logging.Error(err)
		sections = nil
	}
	n.sections = sections
	n.cachedFor = idx
	events.Tree.SectionsBuilt(contact.Name, len(sections))
	return n.sections
}

// invalidate drops the section cache; called on every root cursor move.
func (n *Navigator) invalidate() {
	if n.cachedFor < 0 {
		return
	}
	n.cachedFor = -1
	n.sections = nil
	if contact, ok := n.current(); ok {
		events.Tree.CacheInvalidated(contact.Name)
	}
}

func (n *Navigator) seq() *options.Sequence {
	switch n.level {
	case LevelSection:
		return n.sectionSeq
	case LevelItem:
		return n.itemSeq
	}
	return n.rootSeq
}

// Entry summarizes the root level on screen activation.
func (n *Navigator) Entry() string {
	first := ""
	if opt, ok := n.rootSeq.Current(); ok {
		first = opt.Label
	}
	return announce.Entry("Contacts", n.rootSeq.Count(), first)
}

func (n *Navigator) Next() string {
	if n.level == LevelRoot {
		n.rootSeq.Next()
		n.invalidate()
	} else {
		n.seq().Next()
	}
	return n.Repeat()
}

func (n *Navigator) Previous() string {
	if n.level == LevelRoot {
		n.rootSeq.Previous()
		n.invalidate()
	} else {
		n.seq().Previous()
	}
	return n.Repeat()
}

func (n *Navigator) Repeat() string {
	seq := n.seq()
	opt, ok := seq.Current()
	if !ok {
		return "Nothing here."
	}
	return announce.Step(seq.Index(), seq.Count(), opt.Label, opt.Metric)
}

// Detail reads the current section's rows in full; at root level it reads the
// first section of the current contact, which carries the summary.
func (n *Navigator) Detail() string {
	switch n.level {
	case LevelItem:
		opt, ok := n.itemSeq.Current()
		if !ok {
			return "Nothing here."
		}
		return opt.Label
	case LevelSection:
		sections := n.loadSections()
		idx := n.sectionSeq.Index()
		if idx < 0 || idx >= len(sections) {
			return "Nothing here."
		}
		return readSection(sections[idx])
	}
	sections := n.loadSections()
	if len(sections) == 0 {
		return "No information available."
	}
	return readSection(sections[0])
}

func readSection(s Section) string {
	if len(s.Items) == 0 {
		return s.Name + ". Nothing to read."
	}
	labels := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		labels = append(labels, item.Label)
	}
	return announce.ListAll(s.Name, labels)
}

func (n *Navigator) ListAll() string {
	seq := n.seq()
	labels := make([]string, 0, seq.Count())
	for _, opt := range seq.Options() {
		labels = append(labels, opt.Label)
	}
	switch n.level {
	case LevelSection:
		return announce.ListAll("Sections", labels)
	case LevelItem:
		return announce.ListAll(n.sectionName(), labels)
	}
	return announce.ListAll("Contacts", labels)
}

func (n *Navigator) sectionName() string {
	sections := n.loadSections()
	if n.sectionIdx < 0 || n.sectionIdx >= len(sections) {
		return "Items"
	}
	return sections[n.sectionIdx].Name
}

func (n *Navigator) Letter(letter rune) string {
	seq := n.seq()
	idx := seq.FindNextByLetter(letter)
	if idx < 0 {
		return fmt.Sprintf("No item starting with %c.", letter)
	}
	seq.SetIndex(idx)
	if n.level == LevelRoot {
		n.invalidate()
	}
	return n.Repeat()
}

// Activate drills down one level, or activates the current row when there is
// nothing deeper to open.
func (n *Navigator) Activate() command.Outcome {
	switch n.level {
	case LevelRoot:
		return n.drillRoot()
	case LevelSection:
		return n.drillSection()
	case LevelItem:
		return n.activateItem()
	}
	return command.Outcome{}
}

func (n *Navigator) drillRoot() command.Outcome {
	sections := n.loadSections()
	if len(sections) == 0 {
		return command.Outcome{Text: "No information available."}
	}
	opts := make([]options.Option, 0, len(sections))
	for _, s := range sections {
		opts = append(opts, options.Option{Label: s.Name, Activatable: true})
	}
	n.sectionSeq = options.New("contacts:section", opts)
	n.level = LevelSection
	events.Tree.Level(n.level.String(), n.sectionSeq.Index())
	contact, _ := n.current()
	return command.Outcome{Text: announce.Entry(contact.Name, len(sections), sections[0].Name)}
}

func (n *Navigator) drillSection() command.Outcome {
	sections := n.loadSections()
	idx := n.sectionSeq.Index()
	if idx < 0 || idx >= len(sections) {
		return command.Outcome{Text: "Nothing here."}
	}
	section := sections[idx]
	if section.CanActivate() {
		return n.runAction(section.ActionID)
	}
	if !section.CanDrillInto() {
		return command.Outcome{Text: section.Name + ". Nothing to open."}
	}
	opts := make([]options.Option, 0, len(section.Items))
	for _, item := range section.Items {
		opts = append(opts, options.Option{
			Label:         item.Label,
			Tag:           item.ActionID,
			Informational: !item.CanActivate(),
			Activatable:   item.CanActivate(),
		})
	}
	n.itemSeq = options.New("contacts:item", opts)
	n.sectionIdx = idx
	n.level = LevelItem
	events.Tree.Level(n.level.String(), n.itemSeq.Index())
	first := ""
	if opt, ok := n.itemSeq.Current(); ok {
		first = opt.Label
	}
	return command.Outcome{Text: announce.Entry(section.Name, n.itemSeq.Count(), first)}
}

// activateItem only ever activates; there is no deeper level.
func (n *Navigator) activateItem() command.Outcome {
	opt, ok := n.itemSeq.Current()
	if !ok {
		return command.Outcome{Text: "Nothing here."}
	}
	if opt.Informational || opt.Tag == "" {
		return command.Outcome{Text: opt.Label}
	}
	return n.runAction(opt.Tag)
}

// runAction invokes a section or row action. Assigning the current contact as
// target is the terminal success path for the whole sub-mode.
func (n *Navigator) runAction(actionID string) command.Outcome {
	contact, ok := n.current()
	if !ok {
		return command.Outcome{Text: "Nothing here."}
	}
	if err := n.exec.Invoke(actionID, contact.Name); err != nil {
		logging.Error(err)
		return command.Outcome{Text: "Action failed."}
	}
	if actionID == assignAction {
		events.Tree.AssignTarget(contact.Name)
		return command.Outcome{Text: contact.Name + " set as mission target.", Status: command.StatusCommitted}
	}
	return command.Outcome{Text: "Done."}
}

// AssignTarget is the explicit side channel: from any level it targets the
// current contact without drilling to the Actions section.
func (n *Navigator) AssignTarget() command.Outcome {
	return n.runAction(assignAction)
}

// Back climbs one level; from root it ends the sub-mode.
func (n *Navigator) Back() command.Outcome {
	switch n.level {
	case LevelItem:
		n.level = LevelSection
		events.Tree.Level(n.level.String(), n.sectionSeq.Index())
		return command.Outcome{Text: n.Repeat()}
	case LevelSection:
		n.level = LevelRoot
		events.Tree.Level(n.level.String(), n.rootSeq.Index())
		return command.Outcome{Text: n.Repeat()}
	}
	return command.Outcome{Text: "Contacts closed.", Status: command.StatusCancelled}
}
