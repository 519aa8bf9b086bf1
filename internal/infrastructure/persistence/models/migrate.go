package models

// All returns every model in migration order.
func All() []any {
	return []any{
		&ProgramModel{},
		&SubjectModel{},
		&InstructorModel{},
		&InstructorSubjectModel{},
		&UserModel{},
		&TutoringRequestModel{},
		&TutoringSessionModel{},
		&NotificationModel{},
	}
}
