// Package pets demonstrates capability sets: small single-method interfaces
// with an embeddable default behavior, adopted selectively by concrete types
// and used as generic constraints on functions and on the Pet wrapper.
package pets

// Speaker is the capability of making a sound.
type Speaker interface {
	Speak() string
}

// Recaller is the capability of coming back when called.
type Recaller interface {
	Recall() string
}

// Companion combines both capabilities. Functions that take an animal out
// use it as a single constraint instead of repeating Speaker + Recaller.
type Companion interface {
	Speaker
	Recaller
}

// Default behavior for each capability. Go interfaces carry no method
// bodies, so the defaults live in zero-size helpers: a type that embeds one
// adopts the capability with its stock behavior, and a type that declares
// the method itself overrides it. Promotion is resolved statically.

// DefaultSpeaker provides the stock Speak behavior.
type DefaultSpeaker struct{}

func (DefaultSpeaker) Speak() string { return "Animal sound." }

// DefaultRecaller provides the stock Recall behavior.
type DefaultRecaller struct{}

func (DefaultRecaller) Recall() string { return "I'm coming back." }
