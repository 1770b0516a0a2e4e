package emptyiface

// Anything has no operations, so it constrains nothing and is not a
// capability set.
type Anything interface{}

type Box struct{}
