package pets

import (
	"fmt"
	"io"
)

// Script runs the demonstration sequence, writing one line per step.
// The output is fixed and deterministic; the CLI runs it against stdout.
func Script(w io.Writer) error {
	dog := Dog{}
	cat := Cat{}

	lines := []string{
		dog.Speak(),
		dog.Recall(), // the embedded default answers
		cat.Speak(),

		// cat.Recall() and TakeToPark(cat) do not type-check: Cat never
		// adopted Recaller.
		TakeToPark(dog),
		TakeToParkOf(dog),

		TakeToPlay(dog),
		TakeToPlayOf(dog),

		// TakeTwoToPlay(dog, cat) is rejected at compile time on the cat
		// side; two independently typed Companions are fine.
		TakeTwoToPlay(Dog{}, dog),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	// Move the dog into a pet. The handle is consumed: a second Take (or
	// Adopt) of the same handle fails with ErrMoved.
	dogHandle := NewHandle(dog)
	pet, err := Adopt(dogHandle)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, CallBack(pet)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Provoke(pet)); err != nil {
		return err
	}

	catHandle := NewHandle(cat)
	catPet, err := Adopt(catHandle)
	if err != nil {
		return err
	}
	// CallBack(catPet) does not type-check; Provoke is the only operation
	// in reach for a Pet[Cat].
	if _, err := fmt.Fprintln(w, Provoke(catPet)); err != nil {
		return err
	}

	return nil
}
