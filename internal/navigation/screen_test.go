package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitial(t *testing.T) {
	state := Initial()
	assert.False(t, state.Authenticated)
	assert.Equal(t, ScreenWelcome, state.Screen)
}

func TestNavigationIgnoredBeforeAuth(t *testing.T) {
	state := Next(Initial(), Navigate{To: ScreenDashboard})
	assert.Equal(t, ScreenWelcome, state.Screen)

	state = Next(Initial(), Advance{})
	assert.Equal(t, ScreenWelcome, state.Screen)
}

func TestOnboardingFlow(t *testing.T) {
	state := Next(Initial(), AuthSucceeded{})
	assert.True(t, state.Authenticated)

	state = Next(state, Advance{})
	assert.Equal(t, ScreenQuestions, state.Screen)

	state = Next(state, Advance{})
	assert.Equal(t, ScreenDashboard, state.Screen)
}

func TestCertificateOrderingFlow(t *testing.T) {
	state := State{Authenticated: true, Screen: ScreenNeedSelection}

	want := []Screen{
		ScreenCertificateClass,
		ScreenCertificateSubclass,
		ScreenCertificateForm,
		ScreenPayment,
		ScreenOrders,
	}
	for _, expected := range want {
		state = Next(state, Advance{})
		assert.Equal(t, expected, state.Screen)
	}
}

func TestActOrderingFlow(t *testing.T) {
	state := State{Authenticated: true, Screen: ScreenActSelection}

	state = Next(state, Advance{})
	assert.Equal(t, ScreenActForm, state.Screen)

	state = Next(state, Advance{})
	assert.Equal(t, ScreenPayment, state.Screen)
}

func TestNavigateToUnknownScreenFallsBackToDashboard(t *testing.T) {
	state := State{Authenticated: true, Screen: ScreenHelp}
	state = Next(state, Navigate{To: Screen("settings")})
	assert.Equal(t, ScreenDashboard, state.Screen)
}

func TestLogoutResets(t *testing.T) {
	state := State{Authenticated: true, Screen: ScreenMarketplace}
	state = Next(state, LoggedOut{})
	assert.Equal(t, Initial(), state)
}

func TestAdvanceOnTerminalScreenIsNoop(t *testing.T) {
	state := State{Authenticated: true, Screen: ScreenOrders}
	assert.Equal(t, state, Next(state, Advance{}))
}

func TestScreensListsEveryKnownScreen(t *testing.T) {
	listed := Screens()
	assert.Len(t, listed, 22)
	assert.Equal(t, ScreenWelcome, listed[0])
	for _, s := range listed {
		assert.True(t, s.Valid(), string(s))
	}
}

func TestFlowReturnsACopy(t *testing.T) {
	flow := Flow()
	assert.Equal(t, ScreenQuestions, flow[ScreenWelcome])

	flow[ScreenWelcome] = ScreenOrders
	state := Next(State{Authenticated: true, Screen: ScreenWelcome}, Advance{})
	assert.Equal(t, ScreenQuestions, state.Screen)
}

func TestReducerIsPure(t *testing.T) {
	state := State{Authenticated: true, Screen: ScreenCertificateForm}
	first := Next(state, Advance{})
	second := Next(state, Advance{})
	assert.Equal(t, first, second)
	assert.Equal(t, ScreenCertificateForm, state.Screen)
}
