// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// Answer is one entry of a submission. A nil SubmittedAnswer means the
// question was left unanswered.
type Answer struct {
	QuestionID      *int64
	SubmittedAnswer *bool
}

// Submission is a validated POST /responses body.
type Submission struct {
	ParticipantID *string
	QuizID        int64
	Answers       []Answer

	// Payload is the body as received, echoed back on persistence failures.
	Payload json.RawMessage
}

// Parse decodes and type-checks a submission body. It does no I/O; every
// failure is a *ValidationError.
func Parse(body []byte) (Submission, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Submission{}, errEmptyBody
	}
	if !json.Valid(body) {
		return Submission{}, errInvalidJSON
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return Submission{}, errNotObject
	}
	if len(fields) == 0 {
		return Submission{}, errEmptyBody
	}

	sub := Submission{Payload: json.RawMessage(body)}

	quizID, err := parseInt(fields["quiz_id"], errQuizID, errQuizIDRange)
	if err != nil {
		return Submission{}, err
	}
	sub.QuizID = quizID

	var rawAnswers []json.RawMessage
	if isNull(fields["answers"]) || json.Unmarshal(fields["answers"], &rawAnswers) != nil || len(rawAnswers) == 0 {
		return Submission{}, errAnswers
	}

	sub.Answers = make([]Answer, 0, len(rawAnswers))
	for _, raw := range rawAnswers {
		answer, err := parseAnswer(raw)
		if err != nil {
			return Submission{}, err
		}
		sub.Answers = append(sub.Answers, answer)
	}

	participantID, err := parseParticipantID(fields["participant_id"])
	if err != nil {
		return Submission{}, err
	}
	sub.ParticipantID = participantID

	return sub, nil
}

func parseAnswer(raw json.RawMessage) (Answer, error) {
	var fields map[string]json.RawMessage
	if isNull(raw) || json.Unmarshal(raw, &fields) != nil {
		return Answer{}, errAnswerNotObject
	}

	var answer Answer

	qid := fields["question_id"]
	if isNull(qid) {
		return Answer{}, errMissingQuestionID
	}
	id, err := parseInt(qid, errQuestionIDType, errQuestionIDRange)
	if err != nil {
		return Answer{}, err
	}
	answer.QuestionID = &id

	submitted := fields["submitted_answer"]
	if !isNull(submitted) {
		var b bool
		if err := json.Unmarshal(submitted, &b); err != nil {
			return Answer{}, errSubmittedAnswer
		}
		answer.SubmittedAnswer = &b
	}

	return answer, nil
}

func parseParticipantID(raw json.RawMessage) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errParticipantID
	}
	return &s, nil
}

// parseInt accepts only integral JSON number literals: 1.0, 1e3, "1" and
// true are all rejected with invalidErr. Integers outside int64 get rangeErr.
func parseInt(raw json.RawMessage, invalidErr, rangeErr *ValidationError) (int64, error) {
	if isNull(raw) {
		return 0, invalidErr
	}
	n, err := strconv.ParseInt(string(bytes.TrimSpace(raw)), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, rangeErr
	}
	if err != nil {
		return 0, invalidErr
	}
	return n, nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || string(raw) == "null"
}
