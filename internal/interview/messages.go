package interview

import (
	"fmt"
	"strings"

	"github.com/spigell/talentscout/internal/questions"
)

const (
	NoticeNoQuestions     = "Could not generate any questions. Please try again later."
	NoticeNoFeedback      = "No feedback generated by the model."
	NoticeFeedbackFailed  = "Could not generate feedback at this time."
	NoticeClosing         = "That's all the questions I had. Thank you, we've saved your responses and will review them shortly."
	NoticeGoodbye         = "Thanks! We've received your responses. We'll review and get back to you."
	NoticeNoMoreQuestions = "No more questions. Start a new interview to continue."
	NoticeNotStarted      = "The interview has not started yet. Submit your details to begin."
)

var exitWords = map[string]struct{}{
	"exit":    {},
	"quit":    {},
	"bye":     {},
	"goodbye": {},
}

// IsExit reports whether text asks to end the interview.
func IsExit(text string) bool {
	_, ok := exitWords[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

func welcomeText(p Profile) string {
	return fmt.Sprintf("Welcome %s! I will ask you questions based on your tech stack: %s.",
		p.Name, strings.Join(p.Technologies, ", "))
}

func questionText(q questions.Question) string {
	return fmt.Sprintf("(%s) %s", q.Technology, q.Text)
}

func feedbackText(q questions.Question, feedback string) string {
	return fmt.Sprintf("Feedback (%s):\n> %s", q.Technology, feedback)
}

// EvaluationPrompt asks the model to assess one answer for a candidate with
// the given experience.
func EvaluationPrompt(years float64, q questions.Question, answer string) string {
	return fmt.Sprintf(
		"You are an interviewer/evaluator. The candidate is %s with %g years experience.\n"+
			"Question (technology: %s): %s\n"+
			"Candidate's answer: %s\n\n"+
			"Provide a short evaluation focusing on:\n"+
			"- Correctness (was the core idea addressed?)\n"+
			"- Clarity (is it explained clearly?)\n"+
			"- Depth (is it appropriate for the candidate's experience?)\n"+
			"Then give 2-3 concrete suggestions the candidate could study to improve.\n"+
			"Keep the feedback concise (2-4 sentences) and friendly.",
		questions.Level(years), years, q.Technology, q.Text, answer,
	)
}
