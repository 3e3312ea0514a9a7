package quizui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quietspot/internal/quiz"
)

// RunPlain walks the quiz on plain stdin/stdout for non-TTY runs. Answers
// are chosen by option number; a blank line re-prompts without submitting.
func RunPlain(stdout io.Writer, stdin io.Reader, session *quiz.Session) error {
	reader := bufio.NewReader(stdin)
	for {
		index, question, ok := session.Current()
		if !ok {
			break
		}
		_, total := session.Score()
		fmt.Fprintf(stdout, "\nQuestion %d of %d\n%s\n", index+1, total, question.Prompt)
		for i, answer := range question.Answers {
			fmt.Fprintf(stdout, "  %d) %s\n", i+1, answer.Text)
		}
		fmt.Fprint(stdout, "Answer: ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return errors.New("input ended before the quiz finished")
			}
			return fmt.Errorf("read answer: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > len(question.Answers) {
			fmt.Fprintf(stdout, "Enter a number between 1 and %d.\n", len(question.Answers))
			continue
		}
		result, err := session.Submit(question.Answers[choice-1].Text)
		if err != nil {
			return err
		}
		if result.Correct {
			fmt.Fprintln(stdout, "Correct!")
		} else {
			fmt.Fprintln(stdout, "Not quite.")
		}
	}
	score, total := session.Score()
	fmt.Fprintf(stdout, "\n%s\n", quiz.SummaryText(score, total))
	return nil
}
