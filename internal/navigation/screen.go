// Package navigation models the client screen flow as a finite-state
// machine: a typed screen enum plus a pure reducer. The reducer holds no
// global state and is testable without a UI.
package navigation

// Screen identifies one application screen.
type Screen string

const (
	ScreenWelcome             Screen = "welcome"
	ScreenProfileSelection    Screen = "profile-selection"
	ScreenQuestions           Screen = "questions"
	ScreenDashboard           Screen = "dashboard"
	ScreenProcess             Screen = "process"
	ScreenDocuments           Screen = "documents"
	ScreenDiagnosis           Screen = "diagnosis"
	ScreenMarketplace         Screen = "marketplace"
	ScreenHelp                Screen = "help"
	ScreenAIAssistant         Screen = "ai-assistant"
	ScreenKYCVerification     Screen = "kyc-verification"
	ScreenProfessionalPanel   Screen = "professional-panel"
	ScreenUploadDocuments     Screen = "upload-documents"
	ScreenPayment             Screen = "payment"
	ScreenNeedSelection       Screen = "need-selection"
	ScreenCertificateClass    Screen = "certificate-class"
	ScreenCertificateSubclass Screen = "certificate-subclass"
	ScreenCertificateForm     Screen = "certificate-form"
	ScreenActSelection        Screen = "act-selection"
	ScreenActForm             Screen = "act-form"
	ScreenComplexCase         Screen = "complex-case"
	ScreenOrders              Screen = "orders"
)

var allScreens = []Screen{
	ScreenWelcome,
	ScreenProfileSelection,
	ScreenQuestions,
	ScreenDashboard,
	ScreenProcess,
	ScreenDocuments,
	ScreenDiagnosis,
	ScreenMarketplace,
	ScreenHelp,
	ScreenAIAssistant,
	ScreenKYCVerification,
	ScreenProfessionalPanel,
	ScreenUploadDocuments,
	ScreenPayment,
	ScreenNeedSelection,
	ScreenCertificateClass,
	ScreenCertificateSubclass,
	ScreenCertificateForm,
	ScreenActSelection,
	ScreenActForm,
	ScreenComplexCase,
	ScreenOrders,
}

var screens = func() map[Screen]bool {
	m := make(map[Screen]bool, len(allScreens))
	for _, s := range allScreens {
		m[s] = true
	}
	return m
}()

// Valid reports whether s names a known screen.
func (s Screen) Valid() bool {
	return screens[s]
}

// Screens lists every known screen in declaration order. The returned
// slice is a copy.
func Screens() []Screen {
	out := make([]Screen, len(allScreens))
	copy(out, allScreens)
	return out
}

// State is the whole navigation state.
type State struct {
	Authenticated bool
	Screen        Screen
}

// Initial is the state before any event.
func Initial() State {
	return State{Authenticated: false, Screen: ScreenWelcome}
}

// Action advances the navigation state.
type Action interface {
	isAction()
}

// AuthSucceeded fires after login or signup completes.
type AuthSucceeded struct{}

// LoggedOut fires when the session ends.
type LoggedOut struct{}

// Navigate jumps to a specific screen.
type Navigate struct {
	To Screen
}

// Advance moves a linear wizard one step forward.
type Advance struct{}

func (AuthSucceeded) isAction() {}
func (LoggedOut) isAction()     {}
func (Navigate) isAction()      {}
func (Advance) isAction()       {}

// advances maps each wizard screen to its successor.
var advances = map[Screen]Screen{
	ScreenWelcome:             ScreenQuestions,
	ScreenQuestions:           ScreenDashboard,
	ScreenProfileSelection:    ScreenDashboard,
	ScreenNeedSelection:       ScreenCertificateClass,
	ScreenCertificateClass:    ScreenCertificateSubclass,
	ScreenCertificateSubclass: ScreenCertificateForm,
	ScreenCertificateForm:     ScreenPayment,
	ScreenActSelection:        ScreenActForm,
	ScreenActForm:             ScreenPayment,
	ScreenPayment:             ScreenOrders,
	ScreenKYCVerification:     ScreenDashboard,
}

// Flow returns a copy of the wizard advance map.
func Flow() map[Screen]Screen {
	out := make(map[Screen]Screen, len(advances))
	for from, to := range advances {
		out[from] = to
	}
	return out
}

// Next is the pure reducer: identical state and action always produce the
// same result, and the result never depends on anything else.
func Next(state State, action Action) State {
	switch a := action.(type) {
	case AuthSucceeded:
		state.Authenticated = true
		return state

	case LoggedOut:
		return State{Authenticated: false, Screen: ScreenWelcome}

	case Navigate:
		if !state.Authenticated {
			return state
		}
		if !a.To.Valid() {
			state.Screen = ScreenDashboard
			return state
		}
		state.Screen = a.To
		return state

	case Advance:
		if !state.Authenticated {
			return state
		}
		if next, ok := advances[state.Screen]; ok {
			state.Screen = next
		}
		return state

	default:
		return state
	}
}
