package importer

import "fmt"

// ValidateDocument checks a parsed lesson plan against the minimal
// required schema. Returns a slice of all validation errors found; the
// caller rejects the document (leaving any previously loaded plan
// untouched) when the slice is non-empty.
func ValidateDocument(doc *PlanDocument) []error {
	var errs []error

	if doc.Title == "" {
		errs = append(errs, fmt.Errorf("title is required"))
	}
	if doc.Description == "" {
		errs = append(errs, fmt.Errorf("description is required"))
	}
	if doc.Subject == "" {
		errs = append(errs, fmt.Errorf("subject is required"))
	}
	if doc.Activities == nil {
		errs = append(errs, fmt.Errorf("activities is required"))
	}

	for i := range doc.Activities {
		prefix := fmt.Sprintf("activities[%d]", i)
		errs = append(errs, ValidateActivity(prefix, &doc.Activities[i])...)
	}

	return errs
}

// ValidateActivity checks one activity document. Also used standalone on
// single-activity generation responses.
func ValidateActivity(prefix string, a *ActivityDocument) []error {
	var errs []error

	if a.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if a.Timeframe == "" {
		errs = append(errs, fmt.Errorf("%s.timeframe is required", prefix))
	}
	if a.StudentWillStatement == "" {
		errs = append(errs, fmt.Errorf("%s.student_will_statement is required", prefix))
	}
	if a.AssignmentDescription == "" {
		errs = append(errs, fmt.Errorf("%s.assignment_description is required", prefix))
	}
	if a.ActivityStandards == nil {
		errs = append(errs, fmt.Errorf("%s.activity_standards is required", prefix))
	}

	if a.EvaluationCriteria == nil {
		errs = append(errs, fmt.Errorf("%s.evaluation_criteria is required", prefix))
	} else {
		errs = append(errs, validateRubric(prefix+".evaluation_criteria", a.EvaluationCriteria)...)
	}

	for j, aa := range a.AinaraActivities {
		if aa.Title == "" {
			errs = append(errs, fmt.Errorf("%s.ainara_activities[%d].title is required", prefix, j))
		}
		if aa.Rationale == "" {
			errs = append(errs, fmt.Errorf("%s.ainara_activities[%d].rationale is required", prefix, j))
		}
	}

	return errs
}

// validateRubric requires all five levels to be present. Empty criteria
// text is permitted; a missing level is not.
func validateRubric(prefix string, r *RubricDocument) []error {
	var errs []error

	levels := []struct {
		name  string
		value *string
	}{
		{"score_4_proficient", r.Score4Proficient},
		{"score_3_developing", r.Score3Developing},
		{"score_2_beginning", r.Score2Beginning},
		{"score_1_not_yet", r.Score1NotYet},
		{"score_0_no_participation", r.Score0NoParticipation},
	}
	for _, l := range levels {
		if l.value == nil {
			errs = append(errs, fmt.Errorf("%s.%s is required", prefix, l.name))
		}
	}

	return errs
}
