// Package prompt asks the user questions during registration.
package prompt

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/common-fate/deflector/pkg/testable"
)

// Prompter asks a yes/no question.
type Prompter interface {
	AskYesNo(question string) (bool, error)
}

// Survey asks questions on the terminal.
type Survey struct{}

func (Survey) AskYesNo(question string) (bool, error) {
	withStdio := survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)
	in := survey.Confirm{
		Message: question,
	}
	var confirm bool
	err := testable.AskOne(&in, &confirm, withStdio)
	if err != nil {
		return false, err
	}
	return confirm, nil
}

// Scripted answers questions from a fixed list, in order.
// It returns an error if it runs out of answers.
type Scripted struct {
	Answers []bool
	// Asked records every question asked.
	Asked []string
}

func (s *Scripted) AskYesNo(question string) (bool, error) {
	s.Asked = append(s.Asked, question)
	if len(s.Answers) == 0 {
		return false, &ErrNoAnswer{Question: question}
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
