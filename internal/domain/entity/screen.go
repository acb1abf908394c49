package entity

// Screen identifies one step of the flow
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenLocation  Screen = "location"
	ScreenSearch    Screen = "search"
	ScreenHospitals Screen = "hospitals"
	ScreenDetail    Screen = "detail"
)

// Screens lists the flow steps in order
var Screens = []Screen{ScreenLogin, ScreenLocation, ScreenSearch, ScreenHospitals, ScreenDetail}

// ParseScreen returns the screen with the given name
func ParseScreen(name string) (Screen, bool) {
	for _, s := range Screens {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// GuardDecision is the outcome of evaluating a screen's entry guard
type GuardDecision struct {
	Screen     Screen `json:"screen"`
	Proceed    bool   `json:"proceed"`
	RedirectTo Screen `json:"redirect_to,omitempty"`
}

func proceed(screen Screen) GuardDecision {
	return GuardDecision{Screen: screen, Proceed: true}
}

func redirect(screen, to Screen) GuardDecision {
	return GuardDecision{Screen: screen, RedirectTo: to}
}
