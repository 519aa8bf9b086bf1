package tutoring

import "context"

// TutoringService drives the request/accept workflow.
type TutoringService interface {
	// Request files a pending request from studentID and notifies the instructor.
	Request(ctx context.Context, studentID string, input *RequestInput) (*Request, error)
	// ListForStudent returns the requests filed by studentID, newest first.
	ListForStudent(ctx context.Context, studentID string) ([]*Request, error)
	// ListPendingForInstructor returns pending requests addressed to the
	// instructor profile linked to userID, newest first.
	ListPendingForInstructor(ctx context.Context, userID string) ([]*Request, error)
	// Accept confirms a pending request on behalf of userID and creates its session.
	Accept(ctx context.Context, userID string, input *AcceptInput) (*Session, error)
	// Reject declines a pending request on behalf of userID.
	Reject(ctx context.Context, userID, requestID string) (*Request, error)
}

// Repository defines persistence for requests and sessions
type Repository interface {
	CreateRequest(ctx context.Context, request *Request) error
	GetRequestByID(ctx context.Context, requestID string) (*Request, error)
	ListRequests(ctx context.Context, query *RequestQuery) ([]*Request, error)
	// TransitionRequest moves a request from status from to status to.
	// It returns ErrInvalidState when the stored status is not from.
	TransitionRequest(ctx context.Context, requestID, from, to string) error
	// AcceptRequest atomically moves the request from pending to accepted
	// and stores session.
	AcceptRequest(ctx context.Context, requestID string, session *Session) error
}
