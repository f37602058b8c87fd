package flow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kestrelaudio/screenvoice/internal/announce"
	"github.com/kestrelaudio/screenvoice/internal/command"
	"github.com/kestrelaudio/screenvoice/internal/host"
	"github.com/kestrelaudio/screenvoice/internal/logging"
	"github.com/kestrelaudio/screenvoice/internal/logging/events"
	"github.com/kestrelaudio/screenvoice/internal/options"
)

// Template is a base hull loadout the editor copies before any change.
type Template struct {
	ID       string
	Name     string
	Detail   string
	Slots    []Slot
	MaxCargo int
}

// Slot is one fittable position on a hull.
type Slot struct {
	ID     string
	Name   string
	Kind   ComponentKind
	Fitted *Component
}

// RefitQuery supplies templates and available components.
type RefitQuery interface {
	Templates() []Template
	Components(kind ComponentKind) ([]Component, error)
}

// WorkingCopy is the editable copy of a template. Nothing is persisted until
// the save action runs; discarding the copy loses every change.
type WorkingCopy struct {
	TemplateID   string
	TemplateName string
	Name         string
	Slots        []Slot
	Cargo        int
	MaxCargo     int
	ArmorLayers  int
	dirty        bool
}

// Dirty reports whether the copy holds unsaved changes.
func (w *WorkingCopy) Dirty() bool { return w != nil && w.dirty }

func newWorkingCopy(t Template) *WorkingCopy {
	slots := make([]Slot, len(t.Slots))
	copy(slots, t.Slots)
	return &WorkingCopy{
		TemplateID:   t.ID,
		TemplateName: t.Name,
		Slots:        slots,
		MaxCargo:     t.MaxCargo,
	}
}

// EditorState enumerates the refit editor steps.
type EditorState int

const (
	StateTemplate EditorState = iota
	StateCategory
	StateItem
	StateComponent
	StateName
	StateSave
)

func (s EditorState) String() string {
	switch s {
	case StateTemplate:
		return "template"
	case StateCategory:
		return "category"
	case StateItem:
		return "item"
	case StateComponent:
		return "component"
	case StateName:
		return "name"
	case StateSave:
		return "save"
	}
	return "unknown"
}

type categoryID int

const (
	catWeapons categoryID = iota
	catPropulsion
	catPower
	catArmor
	catModules
	catCargo
	catSave
)

func (c categoryID) label() string {
	switch c {
	case catWeapons:
		return "Weapons"
	case catPropulsion:
		return "Propulsion"
	case catPower:
		return "Power"
	case catArmor:
		return "Armor"
	case catModules:
		return "Modules"
	case catCargo:
		return "Cargo capacity"
	case catSave:
		return "Save refit"
	}
	return ""
}

func (c categoryID) kind() (ComponentKind, bool) {
	switch c {
	case catWeapons:
		return KindWeapon, true
	case catPropulsion:
		return KindDrive, true
	case catPower:
		return KindPowerPlant, true
	case catArmor:
		return KindArmor, true
	case catModules:
		return KindModule, true
	}
	return 0, false
}

var editorCategories = []categoryID{catWeapons, catPropulsion, catPower, catArmor, catModules, catCargo, catSave}

// EditorFlow is the refit editor: pick a template, browse categories and
// slots, swap components, name the result, confirm the save. Backing out of
// unsaved work raises the pending-confirmation overlay instead of discarding
// immediately.
type EditorFlow struct {
	query RefitQuery
	exec  host.ActionExecutor
	input *host.InputSlot

	state EditorState
	seq   *options.Sequence

	templates []Template
	work      *WorkingCopy

	category     categoryID
	lastCategory int
	items        []int // indexes into work.Slots for the open category
	lastItem     int
	slotIdx      int         // slot being refitted while choosing a component
	comps        []Component // choices behind the leading "Empty" entry

	pendingDiscard bool
}

// NewEditorFlow starts at template selection. The input slot is owned by the
// caller; the flow holds at most one pending request on it.
func NewEditorFlow(query RefitQuery, exec host.ActionExecutor, input *host.InputSlot) *EditorFlow {
	f := &EditorFlow{query: query, exec: exec, input: input, lastCategory: -1, lastItem: -1}
	f.enterTemplate()
	return f
}

func (f *EditorFlow) State() EditorState { return f.state }

// PendingDiscard exposes the overlay for tests and the demo footer.
func (f *EditorFlow) PendingDiscard() bool { return f.pendingDiscard }

func (f *EditorFlow) transition(to EditorState) {
	events.Flow.Transition("refit", f.state.String(), to.String())
	f.state = to
}

func (f *EditorFlow) enterTemplate() {
	f.transition(StateTemplate)
	f.templates = f.query.Templates()
	opts := make([]options.Option, 0, len(f.templates))
	for _, t := range f.templates {
		opts = append(opts, options.Option{Label: t.Name, Detail: t.Detail, Tag: t.ID, Activatable: true})
	}
	f.seq = options.New("refit:template", opts)
}

func (f *EditorFlow) enterCategory(restore bool) {
	f.transition(StateCategory)
	opts := make([]options.Option, 0, len(editorCategories))
	for _, c := range editorCategories {
		label := c.label()
		if c == catCargo {
			label = fmt.Sprintf("%s: %d of %d", label, f.work.Cargo, f.work.MaxCargo)
		}
		opts = append(opts, options.Option{Label: label, Tag: c.label(), Activatable: true})
	}
	f.seq = options.New("refit:category", opts)
	if restore && f.lastCategory >= 0 {
		f.seq.SetIndex(f.lastCategory)
	}
}

func (f *EditorFlow) enterItems(restore bool) {
	f.transition(StateItem)
	kind, _ := f.category.kind()
	f.items = f.items[:0]
	var opts []options.Option
	for i, slot := range f.work.Slots {
		if slot.Kind != kind {
			continue
		}
		f.items = append(f.items, i)
		opts = append(opts, options.Option{Label: f.slotLabel(slot), Tag: slot.ID, Activatable: true})
	}
	f.seq = options.New("refit:item", opts)
	if restore && f.lastItem >= 0 {
		f.seq.SetIndex(f.lastItem)
	}
}

func (f *EditorFlow) slotLabel(slot Slot) string {
	if slot.Fitted == nil {
		return slot.Name + ": empty"
	}
	if slot.Kind == KindArmor {
		layers := "layer"
		if f.work.ArmorLayers != 1 {
			layers = "layers"
		}
		return fmt.Sprintf("%s: %s, %d %s", slot.Name, slot.Fitted.Name, f.work.ArmorLayers, layers)
	}
	return slot.Name + ": " + slot.Fitted.Name
}

func (f *EditorFlow) enterComponents(slotIdx int) command.Outcome {
	slot := f.work.Slots[slotIdx]
	comps, err := f.query.Components(slot.Kind)
	if err != nil {
		logging.Error(err)
		return active("Components unavailable.")
	}
	f.slotIdx = slotIdx
	f.comps = comps
	opts := make([]options.Option, 0, len(comps)+1)
	opts = append(opts, options.Option{Label: "Empty", Tag: "empty", Activatable: true})
	for _, c := range comps {
		opts = append(opts, options.Option{Label: c.Name, Detail: DescribeComponent(c), Tag: c.ID, Activatable: true})
	}
	f.transition(StateComponent)
	f.seq = options.New("refit:component", opts)
	return active(f.Entry())
}

func (f *EditorFlow) enterSave() {
	f.transition(StateSave)
	f.seq = options.New("refit:save", []options.Option{
		{Label: "Confirm", Tag: "OK", Activatable: true},
		{Label: "Cancel", Tag: "Cancel", Activatable: true},
	})
}

// Entry summarizes the current step for screen activation.
func (f *EditorFlow) Entry() string {
	first := ""
	if opt, ok := f.seq.Current(); ok {
		first = opt.Label
	}
	switch f.state {
	case StateTemplate:
		return announce.Entry("Refit editor", f.seq.Count(), first)
	case StateCategory:
		return announce.Entry("Refit "+f.work.TemplateName, f.seq.Count(), first)
	case StateItem:
		return announce.Entry(f.category.label(), f.seq.Count(), first)
	case StateComponent:
		return announce.Entry("Choose a component", f.seq.Count(), first)
	case StateName:
		return "Enter a name for the refit."
	case StateSave:
		return announce.Entry("Save "+f.work.Name, f.seq.Count(), first)
	}
	return ""
}

func (f *EditorFlow) Next() string {
	f.clearOverlay()
	f.seq.Next()
	return f.Repeat()
}

func (f *EditorFlow) Previous() string {
	f.clearOverlay()
	f.seq.Previous()
	return f.Repeat()
}

// clearOverlay drops the discard prompt; any ordinary navigation does this.
func (f *EditorFlow) clearOverlay() {
	if f.pendingDiscard {
		f.pendingDiscard = false
		events.Flow.PendingConfirm("refit", false)
	}
}

func (f *EditorFlow) Repeat() string {
	opt, ok := f.seq.Current()
	if !ok {
		return "No options."
	}
	return announce.Step(f.seq.Index(), f.seq.Count(), opt.Label, opt.Metric)
}

func (f *EditorFlow) Detail() string {
	opt, ok := f.seq.Current()
	if !ok {
		return "No options."
	}
	return announce.Detail(opt.Label, opt.Detail)
}

func (f *EditorFlow) ListAll() string {
	labels := make([]string, 0, f.seq.Count())
	for _, opt := range f.seq.Options() {
		labels = append(labels, opt.Label)
	}
	switch f.state {
	case StateTemplate:
		return announce.ListAll("Templates", labels)
	case StateItem:
		return announce.ListAll(f.category.label()+" slots", labels)
	case StateComponent:
		return announce.ListAll("Components", labels)
	}
	return announce.ListAll("Categories", labels)
}

func (f *EditorFlow) Letter(letter rune) string {
	idx := f.seq.FindNextByLetter(letter)
	if idx < 0 {
		return fmt.Sprintf("No item starting with %c.", letter)
	}
	f.clearOverlay()
	f.seq.SetIndex(idx)
	return f.Repeat()
}

// Activate interprets the current option per state. With the discard overlay
// raised it confirms the discard instead.
func (f *EditorFlow) Activate() command.Outcome {
	if f.pendingDiscard {
		f.pendingDiscard = false
		events.Flow.PendingConfirm("refit", false)
		events.Flow.Terminated("refit", "discarded")
		return cancelled("Changes discarded.")
	}
	switch f.state {
	case StateTemplate:
		return f.activateTemplate()
	case StateCategory:
		return f.activateCategory()
	case StateItem:
		return f.activateItem()
	case StateComponent:
		return f.activateComponent()
	case StateSave:
		return f.activateSave()
	}
	return active("")
}

func (f *EditorFlow) activateTemplate() command.Outcome {
	idx := f.seq.Index()
	if idx < 0 || idx >= len(f.templates) {
		return active("Nothing to activate.")
	}
	f.work = newWorkingCopy(f.templates[idx])
	f.lastCategory, f.lastItem = -1, -1
	f.enterCategory(false)
	return active(f.Entry())
}

func (f *EditorFlow) activateCategory() command.Outcome {
	idx := f.seq.Index()
	if idx < 0 || idx >= len(editorCategories) {
		return active("Nothing to activate.")
	}
	f.category = editorCategories[idx]
	f.lastCategory = idx
	switch f.category {
	case catCargo:
		return active(fmt.Sprintf("Cargo capacity %d of %d. Use increase and decrease to adjust.", f.work.Cargo, f.work.MaxCargo))
	case catSave:
		return f.beginSave()
	}
	f.lastItem = -1
	f.enterItems(false)
	if f.seq.Count() == 0 {
		f.enterCategory(true)
		return active("No " + strings.ToLower(f.category.label()) + " slots.")
	}
	return active(f.Entry())
}

func (f *EditorFlow) activateItem() command.Outcome {
	idx := f.seq.Index()
	if idx < 0 || idx >= len(f.items) {
		return active("Nothing to activate.")
	}
	f.lastItem = idx
	return f.enterComponents(f.items[idx])
}

func (f *EditorFlow) activateComponent() command.Outcome {
	idx := f.seq.Index()
	if idx < 0 {
		return active("Nothing to activate.")
	}
	slot := &f.work.Slots[f.slotIdx]
	if idx == 0 {
		slot.Fitted = nil
		f.work.dirty = true
		f.enterItems(true)
		return active(f.slotLabel(*slot) + ". " + f.Repeat())
	}
	if idx-1 >= len(f.comps) {
		return active("Nothing to activate.")
	}
	comp := f.comps[idx-1]
	slot.Fitted = &comp
	f.work.dirty = true
	if comp.Kind == KindArmor {
		// Protective layers are a compound apply: the type changes now, the
		// layer count comes back through the text-input continuation. An
		// unparseable answer keeps the type change and leaves the count alone.
		if err := f.input.Request("Armor layers", f.resumeArmorLayers); err != nil {
			logging.Error(err)
			f.enterItems(true)
			return active(f.slotLabel(*slot) + ".")
		}
		events.Flow.InputRequested("refit", "Armor layers")
		f.enterItems(true)
		return active("Applied " + comp.Name + ". Enter armor layers.")
	}
	f.enterItems(true)
	return active(f.slotLabel(*slot) + ".")
}

func (f *EditorFlow) resumeArmorLayers(value *string) string {
	events.Flow.InputResolved("refit", value == nil)
	if value == nil {
		return "Armor layers unchanged."
	}
	layers, err := strconv.Atoi(strings.TrimSpace(*value))
	if err != nil || layers < 0 {
		return "Armor layers unchanged."
	}
	f.work.ArmorLayers = layers
	f.work.dirty = true
	if f.state == StateItem {
		f.enterItems(true)
	}
	return fmt.Sprintf("Armor layers set to %d.", layers)
}

// beginSave validates the working copy, then collects a name through the
// continuation before the binary confirm step.
func (f *EditorFlow) beginSave() command.Outcome {
	if reason := f.validate(); reason != "" {
		return active(reason)
	}
	if err := f.input.Request("Refit name", f.resumeName); err != nil {
		logging.Error(err)
		return active("Waiting for text input.")
	}
	events.Flow.InputRequested("refit", "Refit name")
	f.transition(StateName)
	return active(f.Entry())
}

func (f *EditorFlow) validate() string {
	hasDrive := false
	hasPower := false
	for _, slot := range f.work.Slots {
		if slot.Fitted == nil {
			continue
		}
		switch slot.Kind {
		case KindDrive:
			hasDrive = true
		case KindPowerPlant:
			hasPower = true
		}
	}
	if !hasDrive {
		return "Cannot save: no propulsion assigned."
	}
	if !hasPower {
		return "Cannot save: no power plant assigned."
	}
	return ""
}

func (f *EditorFlow) resumeName(value *string) string {
	events.Flow.InputResolved("refit", value == nil)
	if value == nil || strings.TrimSpace(*value) == "" {
		f.enterCategory(true)
		return "Save cancelled. " + f.Entry()
	}
	f.work.Name = strings.TrimSpace(*value)
	f.enterSave()
	return f.Entry()
}

func (f *EditorFlow) activateSave() command.Outcome {
	opt, ok := f.seq.Current()
	if !ok {
		return active("Nothing to activate.")
	}
	if opt.Tag == "OK" {
		if err := f.exec.Invoke("refit:save", f.work.TemplateID, f.work.Name); err != nil {
			logging.Error(err)
			events.Flow.ActionError("refit", "refit:save", err)
			return active("Action failed.")
		}
		events.Flow.Terminated("refit", "saved")
		return committed("Refit " + f.work.Name + " saved.")
	}
	f.enterCategory(true)
	return active("Save cancelled. " + f.Entry())
}

// Back walks one level out. From category browsing with unsaved changes it
// raises the discard overlay; a second Back clears the overlay and stays put.
func (f *EditorFlow) Back() command.Outcome {
	if f.pendingDiscard {
		f.pendingDiscard = false
		events.Flow.PendingConfirm("refit", false)
		return active("Keeping changes. " + f.Entry())
	}
	switch f.state {
	case StateTemplate:
		events.Flow.Terminated("refit", "cancelled")
		return cancelled("Refit editor closed.")
	case StateCategory:
		if f.work.Dirty() {
			f.pendingDiscard = true
			events.Flow.PendingConfirm("refit", true)
			return active("Discard unsaved changes? Activate to discard, go back to keep editing.")
		}
		events.Flow.Terminated("refit", "cancelled")
		return cancelled("Refit editor closed.")
	case StateItem:
		f.enterCategory(true)
		return active(f.Entry())
	case StateComponent:
		f.enterItems(true)
		return active(f.Entry())
	case StateName:
		// The continuation owns this state; the host form resolves with nil
		// on cancel, which lands back in category browsing.
		return active("Waiting for text input.")
	case StateSave:
		f.enterCategory(true)
		return active("Save cancelled. " + f.Entry())
	}
	return active("")
}

// Increment raises the scalar under the cursor. Only cargo adjusts today.
func (f *EditorFlow) Increment() string {
	return f.adjustCargo(1)
}

// Decrement lowers the scalar under the cursor.
func (f *EditorFlow) Decrement() string {
	return f.adjustCargo(-1)
}

func (f *EditorFlow) adjustCargo(delta int) string {
	if f.state != StateCategory || f.seq.Index() < 0 ||
		f.seq.Index() >= len(editorCategories) || editorCategories[f.seq.Index()] != catCargo {
		return "Nothing to adjust."
	}
	next := f.work.Cargo + delta
	if next < 0 || next > f.work.MaxCargo {
		return fmt.Sprintf("Cargo capacity stays at %d.", f.work.Cargo)
	}
	f.work.Cargo = next
	f.work.dirty = true
	idx := f.seq.Index()
	f.enterCategory(false)
	f.seq.SetIndex(idx)
	return fmt.Sprintf("Cargo capacity %d of %d.", f.work.Cargo, f.work.MaxCargo)
}

// Work exposes the working copy for tests and the demo view.
func (f *EditorFlow) Work() *WorkingCopy { return f.work }
