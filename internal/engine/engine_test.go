package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelaudio/screenvoice/internal/command"
	"github.com/kestrelaudio/screenvoice/internal/host"
	"github.com/kestrelaudio/screenvoice/internal/sim"
	"github.com/kestrelaudio/screenvoice/internal/speech"
)

type doneRecord struct {
	screen host.Screen
	status command.Status
}

func newTestEngine(t *testing.T) (*Engine, *sim.World, *speech.Transcript, *[]doneRecord) {
	t.Helper()
	world := sim.NewWorld()
	transcript := speech.NewTranscript()
	var done []doneRecord
	eng := New(world, world, world, Queries{
		Mission:  world,
		Refit:    world,
		Contacts: world,
	}, transcript, func(screen host.Screen, status command.Status) {
		done = append(done, doneRecord{screen, status})
	})
	return eng, world, transcript, &done
}

func TestEngineNoScreen(t *testing.T) {
	eng, _, transcript, _ := newTestEngine(t)
	eng.Handle(command.Command{Kind: command.Next})
	require.Equal(t, "No accessible screen.", transcript.Last())
	require.False(t, eng.Active())
}

func TestEnginePopupEntrySkipsBrokenElement(t *testing.T) {
	eng, _, transcript, _ := newTestEngine(t)
	eng.ScreenAppeared(host.ScreenPopup)
	require.Equal(t, "Delivery complete. 3 options. Cargo delivered to Meridian Station .", transcript.Last())
	require.Equal(t, host.ScreenPopup, eng.Screen())
}

func TestEnginePopupClaimReward(t *testing.T) {
	eng, world, transcript, done := newTestEngine(t)
	eng.ScreenAppeared(host.ScreenPopup)
	eng.Handle(command.Command{Kind: command.Next})
	require.Equal(t, "2 of 3: Claim reward", transcript.Last())

	eng.Handle(command.Command{Kind: command.Activate})
	require.Equal(t, "Claim reward", transcript.Last())
	require.False(t, eng.Active())
	require.Equal(t, []doneRecord{{host.ScreenPopup, command.StatusCommitted}}, *done)

	inv, ok := world.LastInvocation()
	require.True(t, ok)
	require.Equal(t, "popup:claim-reward", inv.ActionID)
}

func TestEnginePopupNotReadyKeepsMode(t *testing.T) {
	eng, world, transcript, done := newTestEngine(t)
	world.SetPopupReady(false)
	eng.ScreenAppeared(host.ScreenPopup)
	eng.Handle(command.Command{Kind: command.Next})
	eng.Handle(command.Command{Kind: command.Activate})
	require.Equal(t, "Claim reward is not ready yet, please wait.", transcript.Last())
	require.True(t, eng.Active())
	require.Empty(t, *done)
	_, ok := world.LastInvocation()
	require.False(t, ok)
}

func TestEnginePopupBackDismissesThroughCloseTag(t *testing.T) {
	eng, world, transcript, done := newTestEngine(t)
	eng.ScreenAppeared(host.ScreenPopup)
	eng.Handle(command.Command{Kind: command.Back})
	require.Equal(t, "Close", transcript.Last())
	require.Equal(t, []doneRecord{{host.ScreenPopup, command.StatusCancelled}}, *done)

	inv, ok := world.LastInvocation()
	require.True(t, ok)
	require.Equal(t, "popup:close", inv.ActionID)
}

func TestEngineInformationalActivateNeverInvokes(t *testing.T) {
	eng, world, transcript, _ := newTestEngine(t)
	eng.ScreenAppeared(host.ScreenPopup)
	eng.Handle(command.Command{Kind: command.Activate})
	require.Equal(t, "Cargo delivered to Meridian Station .", transcript.Last())
	require.True(t, eng.Active())
	require.Empty(t, world.Invocations())
}

func TestEngineMissionResumeHint(t *testing.T) {
	eng, world, transcript, _ := newTestEngine(t)
	world.SetResume("target", "accept")
	eng.ScreenAppeared(host.ScreenMissionOffer)
	require.Equal(t, "Choose a ship. 3 options. Auriga", transcript.Last())
}

func TestEngineMissionEntryWithoutHint(t *testing.T) {
	eng, _, transcript, _ := newTestEngine(t)
	eng.ScreenAppeared(host.ScreenMissionOffer)
	require.Equal(t, "Mission offer: Escort convoy to Vela. 3 options. Accept", transcript.Last())
}

func TestEngineRefusesCommandsWhileInputPending(t *testing.T) {
	eng, _, transcript, _ := newTestEngine(t)
	eng.ScreenAppeared(host.ScreenRefitEditor)
	eng.Handle(command.Command{Kind: command.Activate})            // Courier hull
	eng.Handle(command.Command{Kind: command.Letter, Letter: 'a'}) // Armor
	eng.Handle(command.Command{Kind: command.Activate})            // armor slots
	eng.Handle(command.Command{Kind: command.Activate})            // components
	eng.Handle(command.Command{Kind: command.Letter, Letter: 'c'}) // Composite plating
	eng.Handle(command.Command{Kind: command.Activate})
	require.Equal(t, "Applied Composite plating. Enter armor layers.", transcript.Last())

	prompt, pending := eng.PendingPrompt()
	require.True(t, pending)
	require.Equal(t, "Armor layers", prompt)

	eng.Handle(command.Command{Kind: command.Next})
	require.Equal(t, "Waiting for text input.", transcript.Last())

	value := "2"
	eng.ResolveInput(&value)
	require.Equal(t, "Armor layers set to 2.", transcript.Last())
	_, pending = eng.PendingPrompt()
	require.False(t, pending)
}

func TestEngineScreenChangeCancelsPendingInput(t *testing.T) {
	eng, _, _, _ := newTestEngine(t)
	eng.ScreenAppeared(host.ScreenRefitEditor)
	eng.Handle(command.Command{Kind: command.Activate})
	eng.Handle(command.Command{Kind: command.Letter, Letter: 'a'})
	eng.Handle(command.Command{Kind: command.Activate})
	eng.Handle(command.Command{Kind: command.Activate})
	eng.Handle(command.Command{Kind: command.Letter, Letter: 'c'})
	eng.Handle(command.Command{Kind: command.Activate})
	_, pending := eng.PendingPrompt()
	require.True(t, pending)

	eng.ScreenAppeared(host.ScreenContactBrowser)
	_, pending = eng.PendingPrompt()
	require.False(t, pending)
	require.Equal(t, host.ScreenContactBrowser, eng.Screen())
}

func TestEngineContactAssignSideChannel(t *testing.T) {
	eng, world, transcript, done := newTestEngine(t)
	eng.ScreenAppeared(host.ScreenContactBrowser)
	eng.Handle(command.Command{Kind: command.AssignTarget})
	require.Equal(t, "Orion Corp set as mission target.", transcript.Last())
	require.Equal(t, []doneRecord{{host.ScreenContactBrowser, command.StatusCommitted}}, *done)

	inv, ok := world.LastInvocation()
	require.True(t, ok)
	require.Equal(t, "contact:assign-target", inv.ActionID)
	require.Equal(t, []string{"Orion Corp"}, inv.Args)
}

func TestEngineContactDrillToAssign(t *testing.T) {
	eng, _, transcript, done := newTestEngine(t)
	eng.ScreenAppeared(host.ScreenContactBrowser)
	require.Equal(t, "Contacts. 2 options. Orion Corp", transcript.Last())

	eng.Handle(command.Command{Kind: command.Activate})
	require.Equal(t, "Orion Corp. 5 options. Summary", transcript.Last())

	eng.Handle(command.Command{Kind: command.Letter, Letter: 'a'})
	eng.Handle(command.Command{Kind: command.Activate})
	require.Equal(t, "Actions. 1 option. Set as mission target", transcript.Last())

	eng.Handle(command.Command{Kind: command.Activate})
	require.Equal(t, "Orion Corp set as mission target.", transcript.Last())
	require.Equal(t, []doneRecord{{host.ScreenContactBrowser, command.StatusCommitted}}, *done)
}

func TestEngineAdjusterFallbacks(t *testing.T) {
	eng, _, transcript, _ := newTestEngine(t)
	eng.ScreenAppeared(host.ScreenContactBrowser)
	eng.Handle(command.Command{Kind: command.Increment})
	require.Equal(t, "Nothing to adjust.", transcript.Last())

	eng.ScreenAppeared(host.ScreenPopup)
	eng.Handle(command.Command{Kind: command.AssignTarget})
	require.Equal(t, "No target to assign here.", transcript.Last())
}

func TestEngineScreenClosedDropsMode(t *testing.T) {
	eng, _, _, done := newTestEngine(t)
	eng.ScreenAppeared(host.ScreenPopup)
	require.True(t, eng.Active())
	eng.ScreenClosed()
	require.False(t, eng.Active())
	require.Equal(t, host.ScreenNone, eng.Screen())
	require.Empty(t, *done)
}

func TestEngineFailedActionKeepsMode(t *testing.T) {
	eng, world, transcript, done := newTestEngine(t)
	world.FailAction("contact:assign-target", true)
	eng.ScreenAppeared(host.ScreenContactBrowser)
	eng.Handle(command.Command{Kind: command.AssignTarget})
	require.Equal(t, "Action failed.", transcript.Last())
	require.True(t, eng.Active())
	require.Empty(t, *done)
}
