package defaults

type Speaker interface {
	Speak() string
}

type Recaller interface {
	Recall() string
}

type Companion interface {
	Speaker
	Recaller
}

type DefaultSpeaker struct{}

func (DefaultSpeaker) Speak() string { return "Animal sound." }

type DefaultRecaller struct{}

func (DefaultRecaller) Recall() string { return "I'm coming back." }

// Dog overrides Speak and defaults Recall.
type Dog struct {
	DefaultRecaller
}

func (Dog) Speak() string { return "Bark" }

// Cat adopts Speaker only — no Recaller edge should appear for it.
type Cat struct{}

func (Cat) Speak() string { return "Meow" }
