package unexported

type Public interface {
	Do() string
}

type hidden interface {
	Do() string
}

type Worker struct{}

func (Worker) Do() string { return "work" }

type drone struct{}

func (drone) Do() string { return "hum" }
