package prompt

import "fmt"

type ErrNoAnswer struct {
	Question string
}

func (e *ErrNoAnswer) Error() string {
	return fmt.Sprintf("no scripted answer for %q", e.Question)
}
