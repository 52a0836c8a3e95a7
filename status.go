package homeworkbot

import "fmt"

// Verdict represents one of the fixed review outcomes of a homework.
//
// Verdict is a string type that can hold one of three predefined values:
// [VerdictApproved], [VerdictReviewing], or [VerdictRejected]. Using a
// string type allows for easy JSON serialization and human-readable
// logging while maintaining type safety through the defined constants.
type Verdict string

const (
	// VerdictApproved indicates the reviewer accepted the homework.
	VerdictApproved Verdict = "approved"

	// VerdictReviewing indicates the homework was taken for review.
	VerdictReviewing Verdict = "reviewing"

	// VerdictRejected indicates the reviewer returned the homework with remarks.
	VerdictRejected Verdict = "rejected"
)

// String returns the string representation of the verdict.
// This implements the fmt.Stringer interface.
func (v Verdict) String() string {
	return string(v)
}

// verdictTable maps each known verdict to its human-readable sentence.
// Defined once, never mutated.
var verdictTable = map[Verdict]string{
	VerdictApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	VerdictReviewing: "Работа взята на проверку ревьюером.",
	VerdictRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// VerdictText returns the human-readable sentence for a verdict.
// The second return value reports whether the verdict is part of the
// fixed vocabulary.
func VerdictText(v Verdict) (string, bool) {
	text, ok := verdictTable[v]
	return text, ok
}

// ParseStatus renders a single homework record as a user-facing sentence.
//
// The record must contain both the "homework_name" and "status" keys;
// otherwise ParseStatus fails with a [MissingFieldError] naming exactly
// the missing key(s). The status value must belong to the fixed verdict
// vocabulary; otherwise ParseStatus fails with an [UnknownStatusError]
// carrying the offending value.
//
// ParseStatus is a pure function: the same record always produces the
// same sentence, and no I/O is performed.
func ParseStatus(rec Record) (string, error) {
	var missing []string
	for _, key := range []string{"homework_name", "status"} {
		if _, ok := rec[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return "", &MissingFieldError{Keys: missing}
	}

	// non-string statuses can never match the verdict table
	status, _ := rec["status"].(string)
	verdict, ok := verdictTable[Verdict(status)]
	if !ok {
		return "", &UnknownStatusError{Status: fmt.Sprint(rec["status"])}
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%v\". %s", rec["homework_name"], verdict), nil
}
