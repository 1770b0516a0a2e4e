package pets

// Dog adopts both capabilities: Speak is overridden, Recall comes from the
// embedded default.
type Dog struct {
	DefaultRecaller
}

func (Dog) Speak() string { return "Bark" }

// Cat adopts only Speaker. Cat{}.Recall() does not type-check, and neither
// does passing a Cat where a Recaller or Companion is required.
type Cat struct{}

func (Cat) Speak() string { return "Meow" }

var (
	_ Companion = Dog{}
	_ Speaker   = Cat{}
)
