package suite

type ErrorKind string

const (
	ErrorMalformed ErrorKind = "malformed"
	ErrorOverflow  ErrorKind = "overflow"
)

type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Strict      bool   `yaml:"strict"`
	Cases       []Case `yaml:"cases"`
}

// Case is one expression with its expected outcome: either Want or Error is set.
type Case struct {
	Name       string    `yaml:"name"`
	Expression string    `yaml:"expression"`
	Want       *int32    `yaml:"want,omitempty"`
	Error      ErrorKind `yaml:"error,omitempty"`
}
