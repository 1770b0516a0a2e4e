package pets

import "fmt"

// Four equivalent ways to accept "any type adopting capability set X".
// Each returns its line instead of printing so the script layer owns all
// output; %T names the concrete type.

// TakeToPark accepts any Recaller through a plain interface parameter —
// the inline form, no type parameter needed when the concrete type
// doesn't have to surface in the signature.
func TakeToPark(animal Recaller) string {
	return fmt.Sprintf("Taking a %T to the park.", animal)
}

// TakeToParkOf is the explicit constraint form of TakeToPark. The type
// parameter buys nothing here beyond making the constraint syntax visible.
func TakeToParkOf[T Recaller](animal T) string {
	return fmt.Sprintf("Taking a %T to the park.", animal)
}

// TakeToPlay requires the combined capability set.
func TakeToPlay(animal Companion) string {
	return fmt.Sprintf("Taking a %T to play.", animal)
}

// TakeToPlayOf is the explicit constraint form of TakeToPlay.
func TakeToPlayOf[T Companion](animal T) string {
	return fmt.Sprintf("Taking a %T to play.", animal)
}

// TakeTwoToPlay takes two animals that may be of different concrete types,
// each required to satisfy the full Companion set. A single type parameter
// would force both arguments to one concrete type, so each parameter gets
// its own, sharing the constraint.
func TakeTwoToPlay[T, U Companion](one T, two U) string {
	return fmt.Sprintf("Taking a %T and a %T to play.", one, two)
}
