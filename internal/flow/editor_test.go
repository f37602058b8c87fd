package flow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelaudio/screenvoice/internal/command"
	"github.com/kestrelaudio/screenvoice/internal/host"
)

type fakeRefit struct {
	templates  []Template
	components map[ComponentKind][]Component
}

func (f *fakeRefit) Templates() []Template { return f.templates }

func (f *fakeRefit) Components(kind ComponentKind) ([]Component, error) {
	return f.components[kind], nil
}

func refitFixture() *fakeRefit {
	ion := Component{ID: "c:ion", Name: "Ion drive", Kind: KindDrive, Thrust: 40}
	fusion := Component{ID: "c:fusion", Name: "Fusion core", Kind: KindPowerPlant, Output: 120}
	return &fakeRefit{
		templates: []Template{
			{
				ID:     "hull:courier",
				Name:   "Courier",
				Detail: "Fast light hull.",
				Slots: []Slot{
					{ID: "w1", Name: "Laser mount", Kind: KindWeapon},
					{ID: "d1", Name: "Drive bay", Kind: KindDrive, Fitted: &ion},
					{ID: "p1", Name: "Reactor bay", Kind: KindPowerPlant, Fitted: &fusion},
					{ID: "a1", Name: "Hull plating", Kind: KindArmor},
				},
				MaxCargo: 40,
			},
			{
				ID:     "hull:freighter",
				Name:   "Freighter",
				Detail: "Slow bulk hauler.",
				Slots: []Slot{
					{ID: "d1", Name: "Drive bay", Kind: KindDrive},
					{ID: "p1", Name: "Reactor bay", Kind: KindPowerPlant, Fitted: &fusion},
				},
				MaxCargo: 160,
			},
		},
		components: map[ComponentKind][]Component{
			KindWeapon: {
				{ID: "c:pulse", Name: "Pulse laser", Kind: KindWeapon, Damage: 12},
				{ID: "c:rail", Name: "Railgun", Kind: KindWeapon, Damage: 30},
			},
			KindDrive:      {ion},
			KindPowerPlant: {fusion},
			KindArmor: {
				{ID: "c:composite", Name: "Composite plating", Kind: KindArmor, Rating: 8},
			},
		},
	}
}

func newEditor(t *testing.T) (*EditorFlow, *recordingExec, *host.InputSlot) {
	t.Helper()
	exec := &recordingExec{}
	slot := &host.InputSlot{}
	return NewEditorFlow(refitFixture(), exec, slot), exec, slot
}

func TestEditorTemplateSelection(t *testing.T) {
	f, _, _ := newEditor(t)
	require.Equal(t, StateTemplate, f.State())
	require.Equal(t, "Refit editor. 2 options. Courier", f.Entry())

	out := f.Activate()
	require.Equal(t, StateCategory, f.State())
	require.Equal(t, "Refit Courier. 7 options. Weapons", out.Text)
	require.False(t, f.Work().Dirty())
}

func TestEditorFitComponent(t *testing.T) {
	f, _, _ := newEditor(t)
	f.Activate() // Courier
	out := f.Activate()
	require.Equal(t, StateItem, f.State())
	require.Equal(t, "Weapons. 1 option. Laser mount: empty", out.Text)

	out = f.Activate()
	require.Equal(t, StateComponent, f.State())
	require.Equal(t, "Choose a component. 3 options. Empty", out.Text)

	f.Next() // Pulse laser
	out = f.Activate()
	require.Equal(t, StateItem, f.State())
	require.Equal(t, "Laser mount: Pulse laser.", out.Text)
	require.True(t, f.Work().Dirty())
}

func TestEditorClearSlot(t *testing.T) {
	f, _, _ := newEditor(t)
	f.Activate()     // Courier
	f.Next()         // Propulsion
	f.Activate()     // drive slots
	f.Activate()     // Drive bay -> components, cursor on Empty
	out := f.Activate()
	require.Equal(t, StateItem, f.State())
	require.Contains(t, out.Text, "Drive bay: empty.")
	require.True(t, f.Work().Dirty())
}

func TestEditorArmorCompoundApply(t *testing.T) {
	f, _, slot := newEditor(t)
	f.Activate() // Courier
	require.Equal(t, "4 of 7: Armor", f.Letter('a'))
	f.Activate() // armor slots
	f.Activate() // Hull plating -> components
	f.Next()     // Composite plating
	out := f.Activate()
	require.Equal(t, "Applied Composite plating. Enter armor layers.", out.Text)
	require.True(t, slot.Pending())
	require.Equal(t, "Armor layers", slot.Prompt())

	value := "3"
	require.Equal(t, "Armor layers set to 3.", slot.Resolve(&value))
	require.Equal(t, 3, f.Work().ArmorLayers)
	require.Equal(t, "1 of 1: Hull plating: Composite plating, 3 layers", f.Repeat())
}

func TestEditorArmorUnparseableLayersKeepsType(t *testing.T) {
	f, _, slot := newEditor(t)
	f.Activate()
	f.Letter('a')
	f.Activate()
	f.Activate()
	f.Next()
	f.Activate()

	value := "many"
	require.Equal(t, "Armor layers unchanged.", slot.Resolve(&value))
	require.Equal(t, 0, f.Work().ArmorLayers)
	require.Equal(t, "1 of 1: Hull plating: Composite plating, 0 layers", f.Repeat())
}

func TestEditorCargoAdjust(t *testing.T) {
	f, _, _ := newEditor(t)
	f.Activate() // Courier
	require.Equal(t, "6 of 7: Cargo capacity: 0 of 40", f.Letter('c'))

	out := f.Activate()
	require.Equal(t, "Cargo capacity 0 of 40. Use increase and decrease to adjust.", out.Text)

	require.Equal(t, "Cargo capacity stays at 0.", f.Decrement())
	require.Equal(t, "Cargo capacity 1 of 40.", f.Increment())
	require.Equal(t, "Cargo capacity 2 of 40.", f.Increment())
	require.Equal(t, "Cargo capacity 1 of 40.", f.Decrement())
	require.True(t, f.Work().Dirty())
	require.Equal(t, "6 of 7: Cargo capacity: 1 of 40", f.Repeat())
}

func TestEditorIncrementElsewhereRefuses(t *testing.T) {
	f, _, _ := newEditor(t)
	f.Activate() // Courier, cursor on Weapons
	require.Equal(t, "Nothing to adjust.", f.Increment())
}

func TestEditorSaveValidation(t *testing.T) {
	f, _, slot := newEditor(t)
	f.Next() // Freighter
	f.Activate()
	f.Letter('s')
	out := f.Activate()
	require.Equal(t, "Cannot save: no propulsion assigned.", out.Text)
	require.Equal(t, StateCategory, f.State())
	require.False(t, slot.Pending())
}

func TestEditorSaveCommit(t *testing.T) {
	f, exec, slot := newEditor(t)
	f.Activate() // Courier, drive and power already fitted
	f.Letter('s')
	out := f.Activate()
	require.Equal(t, StateName, f.State())
	require.Equal(t, "Enter a name for the refit.", out.Text)
	require.Equal(t, "Refit name", slot.Prompt())

	value := "Swift"
	require.Equal(t, "Save Swift. 2 options. Confirm", slot.Resolve(&value))
	require.Equal(t, StateSave, f.State())

	out = f.Activate()
	require.Equal(t, command.StatusCommitted, out.Status)
	require.Equal(t, "Refit Swift saved.", out.Text)
	require.Len(t, exec.calls, 1)
	require.Equal(t, "refit:save", exec.calls[0].action)
	require.Equal(t, []string{"hull:courier", "Swift"}, exec.calls[0].args)
}

func TestEditorSaveNameCancelled(t *testing.T) {
	f, _, slot := newEditor(t)
	f.Activate()
	f.Letter('s')
	f.Activate()
	got := slot.Resolve(nil)
	require.Contains(t, got, "Save cancelled.")
	require.Equal(t, StateCategory, f.State())
}

func TestEditorDiscardOverlay(t *testing.T) {
	f, _, _ := newEditor(t)
	f.Activate()    // Courier
	f.Increment()   // nothing; cursor on Weapons
	f.Letter('c')   // cargo
	f.Increment()   // dirty now
	require.True(t, f.Work().Dirty())

	out := f.Back()
	require.Equal(t, command.StatusActive, out.Status)
	require.Equal(t, "Discard unsaved changes? Activate to discard, go back to keep editing.", out.Text)
	require.True(t, f.PendingDiscard())

	out = f.Back()
	require.Contains(t, out.Text, "Keeping changes.")
	require.False(t, f.PendingDiscard())
	require.Equal(t, StateCategory, f.State())

	f.Back() // overlay again
	out = f.Activate()
	require.Equal(t, command.StatusCancelled, out.Status)
	require.Equal(t, "Changes discarded.", out.Text)
}

func TestEditorNavigationClearsOverlay(t *testing.T) {
	f, _, _ := newEditor(t)
	f.Activate()
	f.Letter('c')
	f.Increment()
	f.Back()
	require.True(t, f.PendingDiscard())
	f.Next()
	require.False(t, f.PendingDiscard())
}

func TestEditorBackFromCleanCategoryCloses(t *testing.T) {
	f, _, _ := newEditor(t)
	f.Activate()
	out := f.Back()
	require.Equal(t, command.StatusCancelled, out.Status)
	require.Equal(t, "Refit editor closed.", out.Text)
}

func TestEditorCursorRestoredAfterBack(t *testing.T) {
	f, _, _ := newEditor(t)
	f.Activate() // Courier
	f.Next()     // Propulsion
	f.Activate() // drive slots
	f.Back()
	require.Equal(t, "2 of 7: Propulsion", f.Repeat())
}
